package pricing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/erp/pricing/internal/domain/pricing"
	"github.com/erp/pricing/internal/domain/shared"
	"github.com/erp/pricing/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	spanService = "pricing"

	// MaxCurrencyPlaces bounds the presentation precision a caller may ask for
	MaxCurrencyPlaces int32 = 8
)

// Service is the stateless pricing calculator used by the HTTP API. It
// resolves named tax rates, normalizes incoming rows and memoizes document
// totals. It is safe for concurrent use.
type Service struct {
	catalog         *pricing.TaxCatalog
	cache           pricing.TotalsCache
	cacheTTL        time.Duration
	places          int32
	defaultQuantity decimal.Decimal
	logger          *zap.Logger
	metrics         *telemetry.PricingMetrics
}

// Option configures a Service
type Option func(*Service)

// WithTotalsCache enables totals memoization
func WithTotalsCache(cache pricing.TotalsCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithCurrencyPlaces sets the default presentation precision
func WithCurrencyPlaces(places int32) Option {
	return func(s *Service) {
		s.places = places
	}
}

// WithDefaultQuantity sets the quantity of new rows and of rows sent without one
func WithDefaultQuantity(q decimal.Decimal) Option {
	return func(s *Service) {
		s.defaultQuantity = q
	}
}

// WithMetrics records engine activity on the given instruments
func WithMetrics(m *telemetry.PricingMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates a new pricing Service
func NewService(catalog *pricing.TaxCatalog, logger *zap.Logger, opts ...Option) *Service {
	if catalog == nil {
		catalog, _ = pricing.NewTaxCatalog()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		catalog:         catalog,
		places:          pricing.DefaultCurrencyPlaces,
		defaultQuantity: pricing.DefaultQuantity,
		logger:          logger.Named("pricing"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrencyPlaces returns the default presentation precision
func (s *Service) CurrencyPlaces() int32 {
	return s.places
}

// NewLine returns a fresh row for a newly added product
func (s *Service) NewLine(ctx context.Context, kind string) (*LineItemResponse, error) {
	_, span := telemetry.StartServiceSpan(ctx, spanService, "new_line")
	defer span.End()

	k, err := pricing.ParseDocumentKind(kind)
	if err != nil {
		return nil, s.reject(ctx, span, "new_line", err)
	}
	row := pricing.NewLineItem("")
	row.Quantity = s.defaultQuantity
	rows, err := pricing.Reprice(pricing.LineContext{Kind: k}, []pricing.LineItem{row})
	if err != nil {
		return nil, s.reject(ctx, span, "new_line", err)
	}

	resp := ToLineItemResponse(rows[0])
	return &resp, nil
}

// DeriveLine applies one edit to a row and returns the re-derived row
func (s *Service) DeriveLine(ctx context.Context, req DeriveLineRequest) (*LineItemResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "derive_line")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrDocumentKind, req.Kind,
		telemetry.SpanAttrField, req.Field,
	)

	lineCtx, err := s.lineContext(req.Kind, req.TaxRate)
	if err != nil {
		return nil, s.reject(ctx, span, "derive_line", err)
	}
	field, err := pricing.ParseField(req.Field)
	if err != nil {
		return nil, s.reject(ctx, span, "derive_line", err)
	}

	rows, err := pricing.Reprice(lineCtx, []pricing.LineItem{s.toLineItem(req.Row)})
	if err != nil {
		return nil, s.reject(ctx, span, "derive_line", err)
	}
	row, err := pricing.DeriveLine(lineCtx, rows[0], field, req.Value)
	if err != nil {
		return nil, s.reject(ctx, span, "derive_line", err)
	}

	s.metrics.RecordDerivation(ctx, lineCtx.Kind.String(), field.String())
	resp := ToLineItemResponse(row)
	return &resp, nil
}

// Reprice validates rows and recomputes all of their derived fields
func (s *Service) Reprice(ctx context.Context, req RepriceRequest) ([]LineItemResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "reprice")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrDocumentKind, req.Kind,
		telemetry.SpanAttrLineCount, len(req.Rows),
	)

	lineCtx, err := s.lineContext(req.Kind, req.TaxRate)
	if err != nil {
		return nil, s.reject(ctx, span, "reprice", err)
	}
	rows, err := pricing.Reprice(lineCtx, s.toLineItems(req.Rows))
	if err != nil {
		return nil, s.reject(ctx, span, "reprice", err)
	}
	return ToLineItemResponses(rows), nil
}

// Aggregate normalizes the rows and computes the document totals. Totals
// are memoized by a fingerprint of the normalized inputs when a cache is
// configured; cache failures never fail the request.
func (s *Service) Aggregate(ctx context.Context, req AggregateRequest) (*TotalsResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "aggregate")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrDocumentKind, req.Kind,
		telemetry.SpanAttrLineCount, len(req.Rows),
		telemetry.SpanAttrDiscountMode, req.Discount.Mode,
		telemetry.SpanAttrTaxName, req.TaxRate,
	)

	places := s.places
	if req.Places != nil {
		places = *req.Places
		if places < 0 || places > MaxCurrencyPlaces {
			err := shared.NewFieldError(shared.ErrInvalidInput.Code, "round",
				fmt.Sprintf("rounding places must be between 0 and %d", MaxCurrencyPlaces))
			return nil, s.reject(ctx, span, "aggregate", err)
		}
	}

	lineCtx, err := s.lineContext(req.Kind, req.TaxRate)
	if err != nil {
		return nil, s.reject(ctx, span, "aggregate", err)
	}
	adj, err := s.adjustments(req, lineCtx.Tax)
	if err != nil {
		return nil, s.reject(ctx, span, "aggregate", err)
	}
	rows, err := pricing.Reprice(lineCtx, s.toLineItems(req.Rows))
	if err != nil {
		return nil, s.reject(ctx, span, "aggregate", err)
	}

	key, keyErr := totalsKey(lineCtx.Kind, rows, adj)
	if keyErr != nil {
		s.logger.Warn("failed to fingerprint totals input", zap.Error(keyErr))
	}

	if totals, ok := s.cachedTotals(ctx, key); ok {
		telemetry.SetAttributes(span, telemetry.SpanAttrCacheHit, true)
		return &TotalsResponse{
			Lines:   ToLineItemResponses(rows),
			Exact:   totals,
			Rounded: totals.Rounded(places),
			Places:  places,
			Cached:  true,
		}, nil
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrCacheHit, false)

	start := time.Now()
	totals, err := pricing.Aggregate(rows, adj)
	if err != nil {
		return nil, s.reject(ctx, span, "aggregate", err)
	}
	s.metrics.RecordAggregation(ctx, totals.DiscountMode.String(), time.Since(start))

	s.storeTotals(ctx, key, totals)

	return &TotalsResponse{
		Lines:   ToLineItemResponses(rows),
		Exact:   totals,
		Rounded: totals.Rounded(places),
		Places:  places,
	}, nil
}

// TaxRates lists the configured tax catalog in configuration order
func (s *Service) TaxRates(ctx context.Context) []TaxRateResponse {
	_, span := telemetry.StartServiceSpan(ctx, spanService, "tax_rates")
	defer span.End()

	rates := s.catalog.All()
	out := make([]TaxRateResponse, len(rates))
	for i, r := range rates {
		out[i] = ToTaxRateResponse(r)
	}
	return out
}

func (s *Service) lineContext(kind, taxName string) (pricing.LineContext, error) {
	k, err := pricing.ParseDocumentKind(kind)
	if err != nil {
		return pricing.LineContext{}, err
	}
	tax, err := s.catalog.Lookup(taxName)
	if err != nil {
		return pricing.LineContext{}, err
	}
	return pricing.LineContext{Kind: k, Tax: tax}, nil
}

func (s *Service) adjustments(req AggregateRequest, tax pricing.TaxRate) (pricing.DocumentAdjustments, error) {
	mode, err := pricing.ParseDiscountMode(req.Discount.Mode)
	if err != nil {
		return pricing.DocumentAdjustments{}, err
	}
	discount := pricing.Discount{Mode: mode, Input: req.Discount.Value}
	if mode == pricing.DiscountNone {
		discount = pricing.NoDiscount()
	}

	var expenses []pricing.ExpenseRow
	for _, e := range req.Expenses {
		expenses = append(expenses, pricing.ExpenseRow{Name: e.Name, Amount: e.Amount})
	}

	adj := pricing.DocumentAdjustments{
		Discount:   discount,
		Tax:        tax,
		Shipping:   req.Shipping,
		Expenses:   expenses,
		AmountPaid: req.AmountPaid,
	}
	return adj, adj.Validate()
}

func (s *Service) toLineItem(in LineInput) pricing.LineItem {
	row := pricing.NewLineItem(in.ID)
	row.Quantity = s.defaultQuantity
	if in.Quantity != nil {
		row.Quantity = *in.Quantity
	}
	row.UnitCost = in.UnitCost
	row.DiscountPercent = in.DiscountPercent
	row.ProfitMarginPercent = in.ProfitMarginPercent
	return row
}

func (s *Service) toLineItems(in []LineInput) []pricing.LineItem {
	rows := make([]pricing.LineItem, len(in))
	for i, r := range in {
		rows[i] = s.toLineItem(r)
	}
	return rows
}

func (s *Service) cachedTotals(ctx context.Context, key string) (pricing.DocumentTotals, bool) {
	if s.cache == nil || key == "" {
		return pricing.DocumentTotals{}, false
	}
	totals, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.metrics.RecordCacheLookup(ctx, telemetry.CacheResultError)
		s.logger.Warn("totals cache read failed", zap.String("key", key), zap.Error(err))
		return pricing.DocumentTotals{}, false
	}
	if !ok {
		s.metrics.RecordCacheLookup(ctx, telemetry.CacheResultMiss)
		return pricing.DocumentTotals{}, false
	}
	s.metrics.RecordCacheLookup(ctx, telemetry.CacheResultHit)
	return totals, true
}

func (s *Service) storeTotals(ctx context.Context, key string, totals pricing.DocumentTotals) {
	if s.cache == nil || key == "" {
		return
	}
	if err := s.cache.Set(ctx, key, totals, s.cacheTTL); err != nil {
		s.logger.Warn("totals cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// reject logs and records a rejected input and returns err unchanged
func (s *Service) reject(ctx context.Context, span trace.Span, op string, err error) error {
	code := pricing.ErrorCode(err)
	telemetry.RecordError(span, err)
	telemetry.SetAttributes(span, telemetry.SpanAttrErrorCode, code)
	s.metrics.RecordRejection(ctx, op, code)
	s.logger.Debug("pricing input rejected",
		zap.String("operation", op),
		zap.String("code", code),
		zap.String("field", pricing.ErrorField(err)),
		zap.Error(err),
	)
	return err
}

// totalsInput is the canonical form hashed into a cache key. Row IDs are
// left out since totals do not depend on them.
type totalsInput struct {
	Kind       pricing.DocumentKind `json:"kind"`
	Rows       []totalsRow          `json:"rows"`
	Discount   pricing.Discount     `json:"discount"`
	Tax        pricing.TaxRate      `json:"tax"`
	Shipping   string               `json:"shipping"`
	Expenses   []string             `json:"expenses"`
	AmountPaid string               `json:"amount_paid"`
}

type totalsRow struct {
	Quantity  string `json:"q"`
	LineTotal string `json:"t"`
}

// totalsKey fingerprints the inputs Aggregate reads. Decimals encode
// without trailing zeros, so 1.50 and 1.5 share a key.
func totalsKey(kind pricing.DocumentKind, rows []pricing.LineItem, adj pricing.DocumentAdjustments) (string, error) {
	in := totalsInput{
		Kind:       kind,
		Rows:       make([]totalsRow, len(rows)),
		Discount:   adj.Discount,
		Tax:        adj.Tax,
		Shipping:   adj.Shipping.String(),
		AmountPaid: adj.AmountPaid.String(),
	}
	for i, r := range rows {
		in.Rows[i] = totalsRow{Quantity: r.Quantity.String(), LineTotal: r.LineTotal.String()}
	}
	for _, e := range adj.Expenses {
		in.Expenses = append(in.Expenses, e.Amount.String())
	}

	raw, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
