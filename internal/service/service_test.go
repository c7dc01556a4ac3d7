package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/prasannakumar-sl/crackers-shop/internal/config"
	"github.com/prasannakumar-sl/crackers-shop/internal/repo"
)

func initTestDB(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")

	require.NoError(t, repo.AutoMigrate(db), "failed to migrate tables")

	return &repo.GormRepo{DB: db}
}

func testDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func testFees(t *testing.T) config.FeeConfig {
	t.Helper()
	return config.FeeConfig{
		ShippingFee:         testDec(t, "100"),
		PackingFeeBase:      testDec(t, "50"),
		PackingFeeThreshold: testDec(t, "5000"),
	}
}
