package pricing

import (
	"context"
	"time"
)

// TotalsCache memoizes totals snapshots by a fingerprint of their inputs.
// Aggregate is pure, so a cached snapshot is valid for as long as it is kept.
type TotalsCache interface {
	Get(ctx context.Context, key string) (DocumentTotals, bool, error)
	Set(ctx context.Context, key string, totals DocumentTotals, ttl time.Duration) error
}
