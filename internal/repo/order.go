package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/prasannakumar-sl/crackers-shop/internal/invoice"
	"github.com/prasannakumar-sl/crackers-shop/internal/models"
)

// CreateOrder persists the order and assigns its derived invoice number
// inside one transaction, so two concurrent checkouts can never share a
// number.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		order.InvoiceNo = invoice.NumberFor(order.ID)
		return tx.Model(order).Update("invoice_no", order.InvoiceNo).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, status, paymentStatus string, offset, limit int) (int64, []models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if paymentStatus != "" {
		q = q.Where("payment_status = ?", paymentStatus)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var orders []models.Order
	if err := q.Preload("Items").Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return 0, nil, err
	}
	return total, orders, nil
}

// ReplaceOrderItems swaps the order's item list and totals atomically.
// Used by the admin edit flow after the aggregator has recomputed.
func (r *GormRepo) ReplaceOrderItems(ctx context.Context, order *models.Order, items []models.OrderItem) (*models.Order, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			items[i].ID = 0
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return tx.Model(order).Select("subtotal", "packing_fee", "shipping_fee", "total").
			Updates(map[string]any{
				"subtotal":     order.Subtotal,
				"packing_fee":  order.PackingFee,
				"shipping_fee": order.ShippingFee,
				"total":        order.Total,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uint, status, paymentStatus string) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if status != "" {
		updates["status"] = status
		order.Status = status
	}
	if paymentStatus != "" {
		updates["payment_status"] = paymentStatus
		order.PaymentStatus = paymentStatus
	}
	if len(updates) == 0 {
		return &order, nil
	}

	if err := r.DB.WithContext(ctx).Model(&order).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
