package router

import "github.com/erp/pricing/internal/interfaces/http/handler"

// NewPricingRoutes maps the calculator endpoints under /pricing
func NewPricingRoutes(h *handler.PricingHandler) *DomainGroup {
	g := NewDomainGroup("pricing", "/pricing")
	g.GET("/tax-rates", h.TaxRates)
	g.POST("/totals", h.Totals)

	lines := g.Group("lines", "/lines")
	lines.POST("", h.NewLine)
	lines.POST("/derive", h.DeriveLine)
	lines.POST("/reprice", h.Reprice)
	return g
}

// NewSystemRoutes maps the service information endpoints under /system
func NewSystemRoutes(h *handler.HealthHandler) *DomainGroup {
	g := NewDomainGroup("system", "/system")
	g.GET("/info", h.Info)
	g.GET("/health", h.Health)
	return g
}
