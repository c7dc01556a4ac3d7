package invoice

import (
	"fmt"
	"time"

	"github.com/prasannakumar-sl/crackers-shop/internal/models"
)

// Document is the passive, layout-ready representation of an invoice.
// Rendering it to HTML, PDF or PNG is the render package's business.
type Document struct {
	InvoiceNo string `json:"invoice_no"`
	Date      string `json:"date"`

	Company  CompanyBlock  `json:"company"`
	Customer CustomerBlock `json:"customer"`

	Rows   []Row       `json:"rows"`
	Totals TotalsBlock `json:"totals"`

	AmountInWords string       `json:"amount_in_words"`
	Payment       PaymentBlock `json:"payment"`

	PaymentStatus string `json:"payment_status"`
}

type CompanyBlock struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Website string `json:"website"`
	LogoURL string `json:"logo_url"`
}

type CustomerBlock struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Row struct {
	SlNo            int    `json:"sl_no"`
	Name            string `json:"name"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	DiscountPercent string `json:"discount_percent"`
	Amount          string `json:"amount"`
}

type TotalsBlock struct {
	Subtotal    string `json:"subtotal"`
	PackingFee  string `json:"packing_fee"`
	ShippingFee string `json:"shipping_fee"`
	Total       string `json:"total"`
}

type PaymentBlock struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
	GPayNumber    string `json:"gpay_number"`
	UPIID         string `json:"upi_id"`
}

// NumberFor derives the unique invoice number from the order id.
func NumberFor(orderID uint) string {
	return fmt.Sprintf("INV-%06d", orderID)
}

// Format assembles the invoice document from an order and its
// configuration inputs. The money fields on the order are already
// rounded for display; this only transcribes them.
func Format(order *models.Order, company models.CompanyInfo, payment models.PaymentMethods) Document {
	rows := make([]Row, 0, len(order.Items))
	for i, it := range order.Items {
		rows = append(rows, Row{
			SlNo:            i + 1,
			Name:            it.ProductName,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice.StringFixed(2),
			DiscountPercent: it.DiscountPercent.StringFixed(0),
			Amount:          it.Amount.StringFixed(2),
		})
	}

	return Document{
		InvoiceNo: order.InvoiceNo,
		Date:      order.CreatedAt.Format(time.DateOnly),
		Company: CompanyBlock{
			Name:    company.Name,
			Phone:   company.Phone,
			Email:   company.Email,
			Address: company.Address,
			Website: company.Website,
			LogoURL: company.LogoURL,
		},
		Customer: CustomerBlock{
			Name:    order.CustomerName,
			Phone:   order.CustomerPhone,
			Email:   order.CustomerEmail,
			Address: order.CustomerAddress,
		},
		Rows: rows,
		Totals: TotalsBlock{
			Subtotal:    order.Subtotal.StringFixed(2),
			PackingFee:  order.PackingFee.StringFixed(2),
			ShippingFee: order.ShippingFee.StringFixed(2),
			Total:       order.Total.StringFixed(2),
		},
		AmountInWords: AmountInWords(order.Total.IntPart()),
		Payment: PaymentBlock{
			BankName:      payment.BankName,
			AccountName:   payment.AccountName,
			AccountNumber: payment.AccountNumber,
			IFSC:          payment.IFSC,
			GPayNumber:    payment.GPayNumber,
			UPIID:         payment.UPIID,
		},
		PaymentStatus: order.PaymentStatus,
	}
}
