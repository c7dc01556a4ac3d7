package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/prasannakumar-sl/crackers-shop/internal/middleware/auth"
)

type Deps struct {
	CatalogHandler  *CatalogHTTP
	OrderHandler    *OrderHTTP
	InvoiceHandler  *InvoiceHTTP
	SectionHandler  *SectionHTTP
	CarouselHandler *CarouselHTTP
	CompanyHandler  *CompanyHTTP
	PageHandler     *PageHTTP
	HomeHandler     *HomeHTTP
	AuthHandler     *AuthHTTP
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	mw := authmw.New(d.JWTSecret)

	// storefront
	e.GET("/home", d.HomeHandler.GetHome)
	e.GET("/pages/:slug", d.PageHandler.GetPage)

	products := e.Group("/catalog/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/search", d.CatalogHandler.SearchProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	e.POST("/orders/checkout", d.OrderHandler.Checkout)

	// admin
	e.POST("/admin/login", d.AuthHandler.Login)
	e.POST("/admin/logout", d.AuthHandler.Logout)

	admin := e.Group("/admin", mw.RequireAdmin)

	admin.POST("/products", d.CatalogHandler.CreateProduct)
	admin.POST("/products/bulk", d.CatalogHandler.BulkImport)
	admin.PATCH("/products/:id", d.CatalogHandler.PatchProduct)
	admin.DELETE("/products/:id", d.CatalogHandler.DeleteProduct)

	admin.GET("/orders", d.OrderHandler.ListOrders)
	admin.GET("/orders/:id", d.OrderHandler.GetOrder)
	admin.PATCH("/orders/:id", d.OrderHandler.EditOrder)
	admin.PATCH("/orders/:id/status", d.OrderHandler.UpdateStatus)

	admin.GET("/orders/:id/invoice.json", d.InvoiceHandler.GetDocument)
	admin.GET("/orders/:id/invoice", d.InvoiceHandler.GetHTML)
	admin.GET("/orders/:id/invoice.pdf", d.InvoiceHandler.GetPDF)
	admin.GET("/orders/:id/invoice.png", d.InvoiceHandler.GetPNG)

	admin.GET("/sections", d.SectionHandler.GetSections)
	admin.POST("/sections", d.SectionHandler.CreateSection)
	admin.PATCH("/sections/:id", d.SectionHandler.PatchSection)
	admin.DELETE("/sections/:id", d.SectionHandler.DeleteSection)
	admin.PUT("/sections/:id/products", d.SectionHandler.SetProducts)

	admin.GET("/carousel", d.CarouselHandler.GetCarousel)
	admin.POST("/carousel", d.CarouselHandler.AddImage)
	admin.PATCH("/carousel/:id", d.CarouselHandler.PatchImage)
	admin.DELETE("/carousel/:id", d.CarouselHandler.DeleteImage)

	admin.GET("/company", d.CompanyHandler.GetCompanyInfo)
	admin.PUT("/company", d.CompanyHandler.PutCompanyInfo)
	admin.GET("/payment-methods", d.CompanyHandler.GetPaymentMethods)
	admin.PUT("/payment-methods", d.CompanyHandler.PutPaymentMethods)

	admin.GET("/pages", d.PageHandler.GetPages)
	admin.PUT("/pages", d.PageHandler.SavePage)
	admin.DELETE("/pages/:slug", d.PageHandler.DeletePage)
}
