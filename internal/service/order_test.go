package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
	"github.com/prasannakumar-sl/crackers-shop/internal/transport"
)

func newOrderService(t *testing.T) (*OrderService, *CatalogService) {
	t.Helper()

	r := initTestDB(t)
	return &OrderService{Repo: r, Fees: testFees(t)},
		&CatalogService{Repo: r}
}

func seedProduct(t *testing.T, catalog *CatalogService, name, price string, stock uint) *models.Product {
	t.Helper()

	prod, err := catalog.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name:  name,
		Price: price,
		Stock: stock,
	})
	require.NoError(t, err)
	return prod
}

func TestOrderService_Checkout(t *testing.T) {
	svc, catalog := newOrderService(t)
	ctx := context.Background()

	flower := seedProduct(t, catalog, "Flower Pots", "100", 50)

	order, err := svc.Checkout(ctx, transport.CheckoutRequest{
		CustomerName:  "Arun Kumar",
		CustomerPhone: "9876543210",
		Items: []transport.OrderItemRequest{
			{ProductID: &flower.ID, Quantity: 2, DiscountPercent: 50},
			{ProductName: "Sparklers 10cm", Quantity: 1, UnitPrice: "₹200"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-000001", order.InvoiceNo)
	assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// (100 × 50% × 2) + (200 × 1) = 300; under threshold so packing
	// applies: 300 + 100 shipping + 50 packing = 450.
	assert.Equal(t, "300.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "50.00", order.PackingFee.StringFixed(2))
	assert.Equal(t, "100.00", order.ShippingFee.StringFixed(2))
	assert.Equal(t, "450.00", order.Total.StringFixed(2))

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Flower Pots", order.Items[0].ProductName)
	assert.Equal(t, "100.00", order.Items[0].Amount.StringFixed(2))
	assert.Equal(t, "Sparklers 10cm", order.Items[1].ProductName)
	assert.Nil(t, order.Items[1].ProductID)
	assert.Equal(t, "200.00", order.Items[1].Amount.StringFixed(2))

	stored, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Total.StringFixed(2), stored.Total.StringFixed(2))
	require.Len(t, stored.Items, 2)
}

func TestOrderService_Checkout_Validation(t *testing.T) {
	svc, catalog := newOrderService(t)
	ctx := context.Background()

	prod := seedProduct(t, catalog, "Atom Bomb", "45", 10)

	tests := []struct {
		name string
		req  transport.CheckoutRequest
	}{
		{
			name: "missing customer name",
			req: transport.CheckoutRequest{
				Items: []transport.OrderItemRequest{{ProductID: &prod.ID, Quantity: 1}},
			},
		},
		{
			name: "no items",
			req:  transport.CheckoutRequest{CustomerName: "A"},
		},
		{
			name: "zero quantity",
			req: transport.CheckoutRequest{
				CustomerName: "A",
				Items:        []transport.OrderItemRequest{{ProductID: &prod.ID, Quantity: 0}},
			},
		},
		{
			name: "discount above 100",
			req: transport.CheckoutRequest{
				CustomerName: "A",
				Items:        []transport.OrderItemRequest{{ProductID: &prod.ID, Quantity: 1, DiscountPercent: 101}},
			},
		},
		{
			name: "manual item without name",
			req: transport.CheckoutRequest{
				CustomerName: "A",
				Items:        []transport.OrderItemRequest{{Quantity: 1, UnitPrice: "10"}},
			},
		},
		{
			name: "manual item with bad price",
			req: transport.CheckoutRequest{
				CustomerName: "A",
				Items:        []transport.OrderItemRequest{{ProductName: "X", Quantity: 1, UnitPrice: "abc"}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Checkout(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestOrderService_Checkout_UnknownProduct(t *testing.T) {
	svc, _ := newOrderService(t)

	missing := uint(999)
	_, err := svc.Checkout(context.Background(), transport.CheckoutRequest{
		CustomerName: "A",
		Items:        []transport.OrderItemRequest{{ProductID: &missing, Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderService_Checkout_PackingWaivedOverThreshold(t *testing.T) {
	svc, catalog := newOrderService(t)
	ctx := context.Background()

	gift := seedProduct(t, catalog, "Gift Box Deluxe", "6000", 5)

	order, err := svc.Checkout(ctx, transport.CheckoutRequest{
		CustomerName: "Meena",
		Items:        []transport.OrderItemRequest{{ProductID: &gift.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "0.00", order.PackingFee.StringFixed(2))
	assert.Equal(t, "6100.00", order.Total.StringFixed(2))
}

func TestOrderService_EditOrder_RecomputesTotals(t *testing.T) {
	svc, catalog := newOrderService(t)
	ctx := context.Background()

	flower := seedProduct(t, catalog, "Flower Pots", "100", 50)

	order, err := svc.Checkout(ctx, transport.CheckoutRequest{
		CustomerName: "Arun Kumar",
		Items:        []transport.OrderItemRequest{{ProductID: &flower.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "250.00", order.Total.StringFixed(2))

	updated, err := svc.EditOrder(ctx, order.ID, transport.EditOrderRequest{
		Items: []transport.OrderItemRequest{
			{ProductID: &flower.ID, Quantity: 3},
			{ProductName: "Rocket Pack", Quantity: 2, UnitPrice: "150", DiscountPercent: 10},
		},
	})
	require.NoError(t, err)

	// 300 + 270 = 570 subtotal, + 100 shipping + 50 packing.
	assert.Equal(t, "570.00", updated.Subtotal.StringFixed(2))
	assert.Equal(t, "720.00", updated.Total.StringFixed(2))
	require.Len(t, updated.Items, 2)

	stored, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "720.00", stored.Total.StringFixed(2))
	assert.Equal(t, order.InvoiceNo, stored.InvoiceNo)
	require.Len(t, stored.Items, 2)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	svc, catalog := newOrderService(t)
	ctx := context.Background()

	prod := seedProduct(t, catalog, "Chakkar", "30", 100)
	order, err := svc.Checkout(ctx, transport.CheckoutRequest{
		CustomerName: "Ravi",
		Items:        []transport.OrderItemRequest{{ProductID: &prod.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, order.ID, transport.OrderStatusRequest{
		Status:        models.OrderStatusCompleted,
		PaymentStatus: models.PaymentStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)
	assert.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)

	// No transition constraints: completed may go back to pending.
	back, err := svc.UpdateStatus(ctx, order.ID, transport.OrderStatusRequest{Status: models.OrderStatusPending})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, back.Status)
	assert.Equal(t, models.PaymentStatusPaid, back.PaymentStatus)

	_, err = svc.UpdateStatus(ctx, order.ID, transport.OrderStatusRequest{Status: "shipped"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateStatus(ctx, order.ID, transport.OrderStatusRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrderService_ListOrders(t *testing.T) {
	svc, catalog := newOrderService(t)
	ctx := context.Background()

	prod := seedProduct(t, catalog, "Lakshmi Cracker", "25", 200)

	for i := 0; i < 3; i++ {
		_, err := svc.Checkout(ctx, transport.CheckoutRequest{
			CustomerName: "Customer",
			Items:        []transport.OrderItemRequest{{ProductID: &prod.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	total, orders, err := svc.ListOrders(ctx, "", "", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, orders, 3)

	total, _, err = svc.ListOrders(ctx, models.OrderStatusCompleted, "", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	_, _, err = svc.ListOrders(ctx, "bogus", "", 0, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
