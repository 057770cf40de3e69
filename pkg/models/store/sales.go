package store

import "time"

// SalesRecord is a single transaction row as returned by the warehouse,
// already aggregated per (txn date, item, region) by the query.
type SalesRecord struct {
	TxnDate   time.Time
	ItemKey   string
	RegionKey string
	Quantity  float64
	Amount    float64
}

type SalesStats struct {
	RecordsCount  int64
	LatestTxnDate *time.Time
}
