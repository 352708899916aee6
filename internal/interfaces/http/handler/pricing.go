package handler

import (
	pricingapp "github.com/erp/pricing/internal/application/pricing"
	"github.com/gin-gonic/gin"
)

// PricingHandler exposes the line item and document totals calculators
type PricingHandler struct {
	BaseHandler
	service *pricingapp.Service
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(service *pricingapp.Service) *PricingHandler {
	return &PricingHandler{service: service}
}

// NewLine godoc
// @ID           createPricingLine
// @Summary      Start a new line item
// @Description  Returns a fresh row with the default quantity and zero cost, as added when a product is picked
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request body NewLineRequest true "Document kind"
// @Success      200 {object} APIResponse[pricingapp.LineItemResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /pricing/lines [post]
func (h *PricingHandler) NewLine(c *gin.Context) {
	var req NewLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	line, err := h.service.NewLine(c.Request.Context(), req.Kind)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, line)
}

// DeriveLine godoc
// @ID           derivePricingLine
// @Summary      Apply one edit to a line item
// @Description  Sets the edited field and recomputes the row's derived values
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request body DeriveLineRequest true "Row and edit"
// @Success      200 {object} APIResponse[pricingapp.LineItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /pricing/lines/derive [post]
func (h *PricingHandler) DeriveLine(c *gin.Context) {
	var req DeriveLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	appReq, err := req.ToApp()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	line, err := h.service.DeriveLine(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, line)
}

// Reprice godoc
// @ID           repricePricingLines
// @Summary      Recompute line items
// @Description  Validates rows and recomputes every derived column, e.g. after the tax rate changed
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request body RepriceRequest true "Rows"
// @Success      200 {object} APIResponse[[]pricingapp.LineItemResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /pricing/lines/reprice [post]
func (h *PricingHandler) Reprice(c *gin.Context) {
	var req RepriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	appReq, err := req.ToApp()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	lines, err := h.service.Reprice(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lines)
}

// Totals godoc
// @ID           aggregatePricingTotals
// @Summary      Compute document totals
// @Description  Aggregates the rows and applies discount, tax, shipping, extra expenses and the amount paid.
// @Description  Exact totals are returned together with a copy rounded half away from zero.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        round   query int           false "Display precision (0-8), defaults to the configured currency places"
// @Param        request body  TotalsRequest true  "Document"
// @Success      200 {object} APIResponse[pricingapp.TotalsResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /pricing/totals [post]
func (h *PricingHandler) Totals(c *gin.Context) {
	var query TotalsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}
	var req TotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	appReq, err := req.ToApp(query.Round)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	totals, err := h.service.Aggregate(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, totals)
}

// TaxRates godoc
// @ID           listPricingTaxRates
// @Summary      List tax rates
// @Description  Returns the configured tax catalog in configuration order
// @Tags         pricing
// @Produce      json
// @Success      200 {object} APIResponse[[]pricingapp.TaxRateResponse]
// @Router       /pricing/tax-rates [get]
func (h *PricingHandler) TaxRates(c *gin.Context) {
	h.Success(c, h.service.TaxRates(c.Request.Context()))
}
