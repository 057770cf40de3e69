package sales

import (
	"context"
	"time"

	"github.com/de-tools/sales-insights/pkg/models/store"
)

// Dimension filter keys accepted by TxnQuery.Filters.
const (
	DimensionProduct = "product"
	DimensionRegion  = "region"
)

// TxnQuery selects transaction rows for [Start, End] with optional
// dimension filters (product, region).
type TxnQuery struct {
	Start   time.Time
	End     time.Time
	Filters map[string]string
}

// Store is the transaction-store collaborator of the forecasting engine.
// Implementations are synchronous; callers own the handle lifecycle and
// must Close it on every exit path.
type Store interface {
	// FetchTransactions returns per-day aggregated sales rows for the
	// query range, ordered by transaction date.
	FetchTransactions(ctx context.Context, q TxnQuery) ([]store.SalesRecord, error)
	// LatestTxnDate returns the most recent transaction date, or nil
	// when the store holds no rows.
	LatestTxnDate(ctx context.Context) (*time.Time, error)
	Close() error
}
