package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"

	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Product struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"      json:"id"`
	Name      string          `gorm:"not null;index"                json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"   json:"price"`
	Stock     uint            `json:"stock"`
	ImageURL  string          `json:"image_url"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderItem stores a denormalized name/price snapshot taken at order
// time; ProductID is nullable so manually typed items survive catalog
// edits and deletions.
type OrderItem struct {
	ID              uint            `gorm:"primaryKey"                       json:"id"`
	OrderID         uint            `gorm:"index;not null"                   json:"order_id"`
	ProductID       *uint           `json:"product_id"`
	ProductName     string          `gorm:"not null"                         json:"product_name"`
	Quantity        int             `gorm:"not null;check:quantity>0"        json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null"      json:"unit_price"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);default:0"      json:"discount_percent"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null"      json:"amount"`
}

type Order struct {
	ID              uint            `gorm:"primaryKey"                    json:"id"`
	InvoiceNo       string          `gorm:"uniqueIndex;not null"          json:"invoice_no"`
	CustomerName    string          `gorm:"not null"                      json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerAddress string          `json:"customer_address"`
	PaymentStatus   string          `gorm:"not null;default:'unpaid'"     json:"payment_status"`
	Status          string          `gorm:"not null;default:'pending'"    json:"status"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2);not null"   json:"subtotal"`
	PackingFee      decimal.Decimal `gorm:"type:decimal(12,2);default:0"  json:"packing_fee"`
	ShippingFee     decimal.Decimal `gorm:"type:decimal(12,2);default:0"  json:"shipping_fee"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null"   json:"total"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"            json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type Section struct {
	ID       uint             `gorm:"primaryKey"     json:"id"`
	Title    string           `gorm:"not null"       json:"title"`
	Position int              `gorm:"default:0"      json:"position"`
	Products []SectionProduct `gorm:"foreignKey:SectionID" json:"products"`
}

type SectionProduct struct {
	ID        uint    `gorm:"primaryKey"     json:"id"`
	SectionID uint    `gorm:"index;not null" json:"section_id"`
	ProductID uint    `gorm:"not null"       json:"product_id"`
	Position  int     `gorm:"default:0"      json:"position"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
}

type CarouselImage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ImageURL string `gorm:"not null"   json:"image_url"`
	Caption  string `json:"caption"`
	Position int    `gorm:"default:0"  json:"position"`
}

// CompanyInfo is a singleton row (id = 1) consumed by the invoice
// formatter and the storefront header.
type CompanyInfo struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null"   json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Website string `json:"website"`
	LogoURL string `json:"logo_url"`
}

// PaymentMethods is a singleton row (id = 1). The original app kept
// these identifiers in browser local storage; they are now an explicit
// admin-managed record passed into the invoice formatter.
type PaymentMethods struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
	GPayNumber    string `json:"gpay_number"`
	UPIID         string `json:"upi_id"`
}

type Admin struct {
	ID           uint      `gorm:"primaryKey"        json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null"          json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Page struct {
	ID    uint   `gorm:"primaryKey"           json:"id"`
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	Title string `gorm:"not null"             json:"title"`
	Body  string `json:"body"`
}
