package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prasannakumar-sl/crackers-shop/internal/logging"
	"github.com/prasannakumar-sl/crackers-shop/internal/service"
)

// HomeHTTP serves the storefront landing payload: curated sections,
// the carousel and the company header in one response.
type HomeHTTP struct {
	Sections *service.SectionService
	Carousel *service.CarouselService
	Company  *service.CompanyService
}

func (h *HomeHTTP) GetHome(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "home.get_home")

	sections, err := h.Sections.GetSections(ctx)
	if err != nil {
		l.Error("get_home_error", "status", 500, "reason", "cannot load sections", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load home")
	}

	carousel, err := h.Carousel.GetCarousel(ctx)
	if err != nil {
		l.Error("get_home_error", "status", 500, "reason", "cannot load carousel", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load home")
	}

	company, err := h.Company.GetCompanyInfo(ctx)
	if err != nil {
		l.Error("get_home_error", "status", 500, "reason", "cannot load company info", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load home")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"company":  company,
		"carousel": carousel,
		"sections": sections,
	})
}
