package render

import (
	"bytes"
	"html/template"

	"github.com/prasannakumar-sl/crackers-shop/internal/invoice"
)

// invoiceTemplate is the fixed invoice layout. It is deliberately
// self-contained (inline CSS, no external assets) so the headless
// browser can print it without network access.
const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNo}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 13px; color: #222; margin: 24px; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #b91c1c; padding-bottom: 12px; }
  .company h1 { margin: 0 0 4px 0; font-size: 20px; color: #b91c1c; }
  .company p, .meta p, .customer p { margin: 2px 0; }
  .meta { text-align: right; }
  .customer { margin: 16px 0; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  th, td { border: 1px solid #999; padding: 6px 8px; text-align: left; }
  th { background: #fee2e2; }
  td.num, th.num { text-align: right; }
  .totals { margin-top: 12px; width: 40%; margin-left: auto; }
  .totals td { border: none; padding: 3px 8px; }
  .totals tr.grand td { border-top: 2px solid #b91c1c; font-weight: bold; }
  .words { margin-top: 12px; font-style: italic; }
  .payment { margin-top: 20px; border-top: 1px dashed #999; padding-top: 10px; }
  .payment h3 { margin: 0 0 6px 0; font-size: 14px; }
  .status { text-transform: uppercase; font-weight: bold; }
</style>
</head>
<body>
  <div class="header">
    <div class="company">
      {{if .Company.LogoURL}}<img src="{{.Company.LogoURL}}" alt="" height="48">{{end}}
      <h1>{{.Company.Name}}</h1>
      <p>{{.Company.Address}}</p>
      <p>{{.Company.Phone}}{{if .Company.Email}} &middot; {{.Company.Email}}{{end}}</p>
      {{if .Company.Website}}<p>{{.Company.Website}}</p>{{end}}
    </div>
    <div class="meta">
      <p><strong>Invoice No:</strong> {{.InvoiceNo}}</p>
      <p><strong>Date:</strong> {{.Date}}</p>
      <p class="status">{{.PaymentStatus}}</p>
    </div>
  </div>

  <div class="customer">
    <p><strong>Bill To:</strong> {{.Customer.Name}}</p>
    {{if .Customer.Address}}<p>{{.Customer.Address}}</p>{{end}}
    <p>{{.Customer.Phone}}{{if .Customer.Email}} &middot; {{.Customer.Email}}{{end}}</p>
  </div>

  <table>
    <tr>
      <th>#</th><th>Item</th><th class="num">Qty</th>
      <th class="num">Rate</th><th class="num">Disc %</th><th class="num">Amount</th>
    </tr>
    {{range .Rows}}
    <tr>
      <td>{{.SlNo}}</td>
      <td>{{.Name}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{.UnitPrice}}</td>
      <td class="num">{{.DiscountPercent}}</td>
      <td class="num">{{.Amount}}</td>
    </tr>
    {{end}}
  </table>

  <table class="totals">
    <tr><td>Subtotal</td><td class="num">{{.Totals.Subtotal}}</td></tr>
    <tr><td>Packing</td><td class="num">{{.Totals.PackingFee}}</td></tr>
    <tr><td>Shipping</td><td class="num">{{.Totals.ShippingFee}}</td></tr>
    <tr class="grand"><td>Total</td><td class="num">{{.Totals.Total}}</td></tr>
  </table>

  <p class="words">{{.AmountInWords}}</p>

  <div class="payment">
    <h3>Payment Details</h3>
    {{if .Payment.AccountNumber}}<p>{{.Payment.BankName}} &middot; {{.Payment.AccountName}} &middot; A/C {{.Payment.AccountNumber}} &middot; IFSC {{.Payment.IFSC}}</p>{{end}}
    {{if .Payment.GPayNumber}}<p>GPay: {{.Payment.GPayNumber}}</p>{{end}}
    {{if .Payment.UPIID}}<p>UPI: {{.Payment.UPIID}}</p>{{end}}
  </div>
</body>
</html>`

var invoiceTmpl = template.Must(template.New("invoice").Parse(invoiceTemplate))

// InvoiceHTML renders the invoice document into the fixed layout.
func InvoiceHTML(doc *invoice.Document) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
