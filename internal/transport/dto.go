package transport

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	// Price is raw on purpose: the catalog historically stores both
	// numeric and currency-prefixed string prices, normalized at the
	// service boundary.
	Price    any    `json:"price"`
	Stock    uint   `json:"stock"`
	ImageURL string `json:"image_url"`
}

type PatchProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *uint            `json:"stock"`
	ImageURL *string          `json:"image_url"`
}

type BulkProductsRequest struct {
	Products []CreateProductRequest `json:"products"`
}

type BulkProductsResponse struct {
	Created    int      `json:"created"`
	Duplicates []string `json:"duplicates"`
}

type OrderItemRequest struct {
	ProductID       *uint  `json:"product_id"`
	ProductName     string `json:"product_name"`
	Quantity        int    `json:"quantity"`
	UnitPrice       any    `json:"unit_price"`
	DiscountPercent any    `json:"discount_percent"`
}

type CheckoutRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerAddress string             `json:"customer_address"`
	Items           []OrderItemRequest `json:"items"`
}

type EditOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

type OrderStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

type CreateSectionRequest struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
}

type PatchSectionRequest struct {
	Title    *string `json:"title"`
	Position *int    `json:"position"`
}

type SectionProductsRequest struct {
	ProductIDs []uint `json:"product_ids"`
}

type CarouselImageRequest struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
	Position int    `json:"position"`
}

type PatchCarouselImageRequest struct {
	ImageURL *string `json:"image_url"`
	Caption  *string `json:"caption"`
	Position *int    `json:"position"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type PageRequest struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}
