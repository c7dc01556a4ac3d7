package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/prasannakumar-sl/crackers-shop/internal/config"
	"github.com/prasannakumar-sl/crackers-shop/internal/events"
	"github.com/prasannakumar-sl/crackers-shop/internal/logging"
	"github.com/prasannakumar-sl/crackers-shop/internal/models"
	"github.com/prasannakumar-sl/crackers-shop/internal/pricing"
	"github.com/prasannakumar-sl/crackers-shop/internal/repo"
	"github.com/prasannakumar-sl/crackers-shop/internal/transport"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer events.Producer
	Fees     config.FeeConfig
}

// Checkout validates and prices the request, then persists the order
// with snapshot pricing. All money figures come from one
// ComputeOrderTotal call; nothing downstream recomputes them.
func (s *OrderService) Checkout(ctx context.Context, req transport.CheckoutRequest) (*models.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer_name required", ErrValidation)
	}

	items, lines, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	totals, err := pricing.ComputeOrderTotal(lines, s.Fees)
	if err != nil {
		return nil, mapPricingErr(err)
	}
	for i := range items {
		items[i].Amount = totals.LineAmounts[i]
	}

	order := &models.Order{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		PaymentStatus:   models.PaymentStatusUnpaid,
		Status:          models.OrderStatusPending,
		Subtotal:        totals.Subtotal,
		PackingFee:      totals.PackingFee,
		ShippingFee:     totals.ShippingFee,
		Total:           totals.Total,
		Items:           items,
	}

	created, err := s.Repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]any{
		"type":      "order_created",
		"orderID":   created.ID,
		"invoiceNo": created.InvoiceNo,
		"total":     created.Total.StringFixed(2),
	})
	return created, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.Repo.GetOrder(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context, status, paymentStatus string, offset, limit int) (int64, []models.Order, error) {
	if status != "" && !validOrderStatus(status) {
		return 0, nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if paymentStatus != "" && !validPaymentStatus(paymentStatus) {
		return 0, nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, paymentStatus)
	}
	return s.Repo.ListOrders(ctx, status, paymentStatus, offset, limit)
}

// EditOrder replaces the order's item list and recomputes every total
// through the aggregator. Totals are never accepted from the caller.
func (s *OrderService) EditOrder(ctx context.Context, id uint, req transport.EditOrderRequest) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	items, lines, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	totals, err := pricing.ComputeOrderTotal(lines, s.Fees)
	if err != nil {
		return nil, mapPricingErr(err)
	}
	for i := range items {
		items[i].Amount = totals.LineAmounts[i]
	}

	order.Subtotal = totals.Subtotal
	order.PackingFee = totals.PackingFee
	order.ShippingFee = totals.ShippingFee
	order.Total = totals.Total

	updated, err := s.Repo.ReplaceOrderItems(ctx, order, items)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]any{
		"type":    "order_updated",
		"orderID": updated.ID,
		"total":   updated.Total.StringFixed(2),
	})
	return updated, nil
}

// UpdateStatus sets the payment and/or fulfillment status. The two
// enums are free-standing; any value may follow any other.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, req transport.OrderStatusRequest) (*models.Order, error) {
	if req.Status == "" && req.PaymentStatus == "" {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if req.Status != "" && !validOrderStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}
	if req.PaymentStatus != "" && !validPaymentStatus(req.PaymentStatus) {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, req.PaymentStatus)
	}

	order, err := s.Repo.UpdateOrderStatus(ctx, id, req.Status, req.PaymentStatus)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]any{
		"type":          "order_status_changed",
		"orderID":       order.ID,
		"status":        order.Status,
		"paymentStatus": order.PaymentStatus,
	})
	return order, nil
}

// resolveItems turns request rows into order item snapshots plus the
// pricing lines that feed the aggregator. Catalog-backed rows snapshot
// the product's current name and price; manual rows must carry both.
func (s *OrderService) resolveItems(ctx context.Context, reqItems []transport.OrderItemRequest) ([]models.OrderItem, []pricing.Line, error) {
	if len(reqItems) == 0 {
		return nil, nil, fmt.Errorf("%w: %v", ErrValidation, pricing.ErrEmptyOrder)
	}

	items := make([]models.OrderItem, 0, len(reqItems))
	lines := make([]pricing.Line, 0, len(reqItems))

	for i, ri := range reqItems {
		var (
			name      string
			unitPrice decimal.Decimal
		)

		if ri.ProductID != nil {
			prod, err := s.Repo.GetProduct(ctx, *ri.ProductID)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: item %d: product %d", ErrNotFound, i, *ri.ProductID)
			}
			name = prod.Name
			unitPrice = prod.Price
		} else {
			if strings.TrimSpace(ri.ProductName) == "" {
				return nil, nil, fmt.Errorf("%w: item %d: product_name required", ErrValidation, i)
			}
			name = strings.TrimSpace(ri.ProductName)
			p, err := pricing.NormalizeAmount(ri.UnitPrice)
			if err != nil {
				return nil, nil, mapPricingErr(fmt.Errorf("item %d: %w", i, err))
			}
			unitPrice = p
		}

		discount := decimal.Zero
		if ri.DiscountPercent != nil {
			d, err := pricing.NormalizeAmount(ri.DiscountPercent)
			if err != nil {
				return nil, nil, mapPricingErr(fmt.Errorf("item %d: %w", i, err))
			}
			discount = d
		}

		if _, err := pricing.PriceLine(unitPrice, discount, ri.Quantity); err != nil {
			return nil, nil, mapPricingErr(fmt.Errorf("item %d: %w", i, err))
		}

		items = append(items, models.OrderItem{
			ProductID:       ri.ProductID,
			ProductName:     name,
			Quantity:        ri.Quantity,
			UnitPrice:       pricing.RoundDisplay(unitPrice),
			DiscountPercent: discount,
		})
		lines = append(lines, pricing.Line{
			UnitPrice:       unitPrice,
			DiscountPercent: discount,
			Quantity:        ri.Quantity,
		})
	}

	return items, lines, nil
}

func validOrderStatus(s string) bool {
	switch s {
	case models.OrderStatusPending, models.OrderStatusCompleted, models.OrderStatusCancelled:
		return true
	}
	return false
}

func validPaymentStatus(s string) bool {
	switch s {
	case models.PaymentStatusUnpaid, models.PaymentStatusPaid:
		return true
	}
	return false
}

// mapPricingErr wraps the pricing sentinels as validation failures so
// the handler layer maps them to 400 without knowing the pricing
// package.
func mapPricingErr(err error) error {
	switch {
	case errors.Is(err, pricing.ErrInvalidAmount),
		errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, pricing.ErrInvalidDiscount),
		errors.Is(err, pricing.ErrEmptyOrder):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return err
}

func (s *OrderService) publish(ctx context.Context, event map[string]any) {
	if s.Producer == nil {
		return
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicOrderEvents, fmt.Sprint(event["orderID"]), event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", events.TopicOrderEvents, "error", err)
	}
}
