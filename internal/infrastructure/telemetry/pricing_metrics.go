package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys used by the pricing instruments
var (
	AttrDocumentKind = attribute.Key("document_kind")
	AttrField        = attribute.Key("field")
	AttrDiscountMode = attribute.Key("discount_mode")
	AttrCacheResult  = attribute.Key("cache_result")
	AttrErrorCode    = attribute.Key("error_code")
	AttrOperation    = attribute.Key("operation")
)

// SmallDurationBuckets suit in-process calculations (seconds)
var SmallDurationBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1}

// Cache lookup outcomes recorded on pricing_totals_cache_lookups_total
const (
	CacheResultHit   = "hit"
	CacheResultMiss  = "miss"
	CacheResultError = "error"
)

// PricingMetrics counts engine activity: line derivations, totals
// aggregations, cache lookups and rejected inputs.
type PricingMetrics struct {
	derivations       *Counter
	aggregations      *Counter
	cacheLookups      *Counter
	rejections        *Counter
	aggregateDuration *Histogram
}

// NewPricingMetrics registers the pricing instruments on meter.
func NewPricingMetrics(meter metric.Meter) (*PricingMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	pm := &PricingMetrics{}
	var err error

	if pm.derivations, err = NewCounter(meter,
		"pricing_line_derivations_total",
		"Total number of line item edits derived",
		"{edits}",
	); err != nil {
		return nil, err
	}
	if pm.aggregations, err = NewCounter(meter,
		"pricing_totals_aggregations_total",
		"Total number of document totals computed",
		"{documents}",
	); err != nil {
		return nil, err
	}
	if pm.cacheLookups, err = NewCounter(meter,
		"pricing_totals_cache_lookups_total",
		"Totals cache lookups by result",
		"{lookups}",
	); err != nil {
		return nil, err
	}
	if pm.rejections, err = NewCounter(meter,
		"pricing_rejected_inputs_total",
		"Inputs rejected by validation, by error code",
		"{errors}",
	); err != nil {
		return nil, err
	}
	if pm.aggregateDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "pricing_totals_aggregate_duration_seconds",
		Description: "Time spent computing document totals",
		Unit:        "s",
		Boundaries:  SmallDurationBuckets,
	}); err != nil {
		return nil, err
	}

	return pm, nil
}

// RecordDerivation counts one successful line edit
func (pm *PricingMetrics) RecordDerivation(ctx context.Context, kind, field string) {
	if pm == nil {
		return
	}
	pm.derivations.Inc(ctx, AttrDocumentKind.String(kind), AttrField.String(field))
}

// RecordAggregation counts one totals computation and its duration
func (pm *PricingMetrics) RecordAggregation(ctx context.Context, discountMode string, d time.Duration) {
	if pm == nil {
		return
	}
	pm.aggregations.Inc(ctx, AttrDiscountMode.String(discountMode))
	pm.aggregateDuration.RecordDuration(ctx, d, AttrDiscountMode.String(discountMode))
}

// RecordCacheLookup counts a cache lookup with one of the CacheResult values
func (pm *PricingMetrics) RecordCacheLookup(ctx context.Context, result string) {
	if pm == nil {
		return
	}
	pm.cacheLookups.Inc(ctx, AttrCacheResult.String(result))
}

// RecordRejection counts an input rejected with the given error code
func (pm *PricingMetrics) RecordRejection(ctx context.Context, operation, code string) {
	if pm == nil {
		return
	}
	pm.rejections.Inc(ctx, AttrOperation.String(operation), AttrErrorCode.String(code))
}

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewPricingMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
