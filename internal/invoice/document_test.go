package invoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func TestNumberFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "INV-000001", NumberFor(1))
	assert.Equal(t, "INV-004217", NumberFor(4217))
	assert.Equal(t, "INV-1000000", NumberFor(1000000))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	order := &models.Order{
		ID:              7,
		InvoiceNo:       NumberFor(7),
		CustomerName:    "Arun Kumar",
		CustomerPhone:   "9876543210",
		CustomerAddress: "12 Main Road, Sivakasi",
		PaymentStatus:   models.PaymentStatusUnpaid,
		Subtotal:        d(t, "300.00"),
		PackingFee:      d(t, "50.00"),
		ShippingFee:     d(t, "100.00"),
		Total:           d(t, "450.00"),
		CreatedAt:       time.Date(2025, 10, 14, 9, 30, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ProductName: "Flower Pots", Quantity: 2, UnitPrice: d(t, "100.00"), DiscountPercent: d(t, "50"), Amount: d(t, "100.00")},
			{ProductName: "Sparklers 10cm", Quantity: 1, UnitPrice: d(t, "200.00"), DiscountPercent: decimal.Zero, Amount: d(t, "200.00")},
		},
	}
	company := models.CompanyInfo{
		Name:    "SL Crackers",
		Phone:   "04562-123456",
		Address: "Sivakasi, Tamil Nadu",
		Website: "slcrackers.example.com",
	}
	payment := models.PaymentMethods{
		BankName:      "Indian Bank",
		AccountNumber: "000123456789",
		IFSC:          "IDIB000S123",
		GPayNumber:    "9876543210",
		UPIID:         "slcrackers@upi",
	}

	doc := Format(order, company, payment)

	assert.Equal(t, "INV-000007", doc.InvoiceNo)
	assert.Equal(t, "2025-10-14", doc.Date)
	assert.Equal(t, "SL Crackers", doc.Company.Name)
	assert.Equal(t, "Arun Kumar", doc.Customer.Name)

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, 1, doc.Rows[0].SlNo)
	assert.Equal(t, "Flower Pots", doc.Rows[0].Name)
	assert.Equal(t, "100.00", doc.Rows[0].UnitPrice)
	assert.Equal(t, "50", doc.Rows[0].DiscountPercent)
	assert.Equal(t, "100.00", doc.Rows[0].Amount)
	assert.Equal(t, "200.00", doc.Rows[1].Amount)

	assert.Equal(t, "300.00", doc.Totals.Subtotal)
	assert.Equal(t, "50.00", doc.Totals.PackingFee)
	assert.Equal(t, "100.00", doc.Totals.ShippingFee)
	assert.Equal(t, "450.00", doc.Totals.Total)

	assert.Equal(t, "Four hundred and fifty only", doc.AmountInWords)
	assert.Equal(t, "slcrackers@upi", doc.Payment.UPIID)
	assert.Equal(t, models.PaymentStatusUnpaid, doc.PaymentStatus)
}
