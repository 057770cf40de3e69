package sql

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/de-tools/sales-insights/pkg/models/store"
	"github.com/de-tools/sales-insights/pkg/store/sales"
	"github.com/rs/zerolog"
)

// ErrUnknownDimension is returned when a filter key has no mapped column.
var ErrUnknownDimension = fmt.Errorf("unknown dimension filter")

// dimensionColumns whitelists filterable dimensions. Filter values are
// always bound as query parameters, never interpolated.
var dimensionColumns = map[string]string{
	sales.DimensionProduct: "item_key",
	sales.DimensionRegion:  "region_key",
}

// salesStore reads the sales_transactions fact table through any
// database/sql driver (DuckDB, Snowflake, Databricks SQL).
type salesStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (sales.Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &salesStore{db: db}, nil
}

func (s *salesStore) FetchTransactions(ctx context.Context, q sales.TxnQuery) ([]store.SalesRecord, error) {
	logger := zerolog.Ctx(ctx)

	query := `
		SELECT
			txn_date,
			item_key,
			region_key,
			SUM(quantity) AS quantity,
			SUM(amount) AS amount
		FROM sales_transactions
		WHERE txn_date >= ? AND txn_date <= ?`
	args := []interface{}{q.Start, q.End}

	for dimension := range q.Filters {
		if _, ok := dimensionColumns[dimension]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dimension)
		}
	}
	// fixed clause order keeps the query text stable
	for _, dimension := range []string{sales.DimensionProduct, sales.DimensionRegion} {
		value, ok := q.Filters[dimension]
		if !ok {
			continue
		}
		query += fmt.Sprintf(" AND %s = ?", dimensionColumns[dimension])
		args = append(args, value)
	}

	query += `
		GROUP BY txn_date, item_key, region_key
		ORDER BY txn_date`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sales transactions query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close sales query rows")
		}
	}(rows)

	var records []store.SalesRecord
	for rows.Next() {
		var r store.SalesRecord
		if err := rows.Scan(&r.TxnDate, &r.ItemKey, &r.RegionKey, &r.Quantity, &r.Amount); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan sales transactions: %w", err)
	}
	return records, nil
}

func (s *salesStore) LatestTxnDate(ctx context.Context) (*time.Time, error) {
	var latest sql.NullTime
	err := s.db.QueryRowContext(ctx, `SELECT MAX(txn_date) FROM sales_transactions`).Scan(&latest)
	if err != nil {
		return nil, fmt.Errorf("latest txn date query failed: %w", err)
	}
	if !latest.Valid {
		return nil, nil
	}
	t := latest.Time
	return &t, nil
}

func (s *salesStore) Close() error {
	return s.db.Close()
}

// SortedDimensions lists the filterable dimension names, for error
// messages and CLI help text.
func SortedDimensions() string {
	names := make([]string, 0, len(dimensionColumns))
	for name := range dimensionColumns {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
