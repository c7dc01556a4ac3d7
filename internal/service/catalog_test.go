package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/prasannakumar-sl/crackers-shop/internal/transport"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	svc := &CatalogService{Repo: initTestDB(t)}
	ctx := context.Background()

	tests := []struct {
		name      string
		req       transport.CreateProductRequest
		wantPrice string
		wantErr   bool
	}{
		{
			name:      "numeric price",
			req:       transport.CreateProductRequest{Name: "Flower Pots", Price: 120.5, Stock: 10},
			wantPrice: "120.50",
		},
		{
			name:      "currency string price",
			req:       transport.CreateProductRequest{Name: "Sparklers 10cm", Price: "₹150.50", Stock: 30},
			wantPrice: "150.50",
		},
		{
			name:      "rs prefix with spaces",
			req:       transport.CreateProductRequest{Name: "Atom Bomb", Price: " Rs. 45 ", Stock: 5},
			wantPrice: "45.00",
		},
		{
			name:    "missing name",
			req:     transport.CreateProductRequest{Price: "10"},
			wantErr: true,
		},
		{
			name:    "garbage price",
			req:     transport.CreateProductRequest{Name: "Chakkar", Price: "free"},
			wantErr: true,
		},
		{
			name:    "negative price",
			req:     transport.CreateProductRequest{Name: "Chakkar", Price: "-5"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			prod, err := svc.CreateProduct(ctx, tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, prod.ID)
			assert.Equal(t, tt.wantPrice, prod.Price.StringFixed(2))
		})
	}
}

func TestCatalogService_PatchProduct(t *testing.T) {
	svc := &CatalogService{Repo: initTestDB(t)}
	ctx := context.Background()

	prod, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Rocket", Price: "80", Stock: 10})
	require.NoError(t, err)

	newName := "Rocket Deluxe"
	newPrice := testDec(t, "95.50")
	updated, err := svc.PatchProduct(ctx, transport.PatchProductRequest{Name: &newName, Price: &newPrice}, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rocket Deluxe", updated.Name)
	assert.Equal(t, "95.50", updated.Price.StringFixed(2))
	assert.Equal(t, uint(10), updated.Stock)

	negative := testDec(t, "-1")
	_, err = svc.PatchProduct(ctx, transport.PatchProductRequest{Price: &negative}, prod.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.PatchProduct(ctx, transport.PatchProductRequest{Name: &newName}, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	svc := &CatalogService{Repo: initTestDB(t)}
	ctx := context.Background()

	prod, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Chakkar", Price: "30"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, prod.ID))

	_, err = svc.GetProduct(ctx, prod.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.DeleteProduct(ctx, prod.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatalogService_BulkImport(t *testing.T) {
	svc := &CatalogService{Repo: initTestDB(t)}
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Flower Pots", Price: "100"})
	require.NoError(t, err)

	resp, err := svc.BulkImport(ctx, transport.BulkProductsRequest{Products: []transport.CreateProductRequest{
		{Name: "flower pots", Price: "100"},   // existing, case differs
		{Name: " Sparklers ", Price: "₹60"},   // new, padded name
		{Name: "sparklers", Price: "60"},      // duplicate within the batch
		{Name: "Atom Bomb", Price: "45"},
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, []string{"flower pots", "sparklers"}, resp.Duplicates)

	total, _, err := svc.GetProducts(ctx, "", 0, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	_, err = svc.BulkImport(ctx, transport.BulkProductsRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.BulkImport(ctx, transport.BulkProductsRequest{Products: []transport.CreateProductRequest{
		{Name: "Bad Price", Price: "oops"},
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogService_SearchProducts_SQLFallback(t *testing.T) {
	svc := &CatalogService{Repo: initTestDB(t)}
	ctx := context.Background()

	for _, p := range []transport.CreateProductRequest{
		{Name: "Flower Pots Big", Category: "ground", Price: "120"},
		{Name: "Flower Pots Small", Category: "ground", Price: "80"},
		{Name: "Sky Rocket", Category: "aerial", Price: "200"},
	} {
		_, err := svc.CreateProduct(ctx, p)
		require.NoError(t, err)
	}

	total, items, err := svc.SearchProducts(ctx, "flower", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)

	_, _, err = svc.SearchProducts(ctx, "  ", 0, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
