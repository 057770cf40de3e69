package sales

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-insights/pkg/models/store"
	"github.com/de-tools/sales-insights/pkg/store/duckdb"
	storesales "github.com/de-tools/sales-insights/pkg/store/sales"
	storesql "github.com/de-tools/sales-insights/pkg/store/sql"
)

// Ingestor loads transaction rows into the embedded DuckDB fact table.
// Reads go through the generic SQL store; this only covers the write path.
type Ingestor interface {
	Add(ctx context.Context, records []store.SalesRecord) error
}

type ingestor struct {
	db *sql.DB
}

func NewIngestor(db *sql.DB) (Ingestor, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &ingestor{db: db}, nil
}

func (i *ingestor) Add(ctx context.Context, records []store.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)
	query := `
		INSERT INTO sales_transactions (
			txn_date, item_key, region_key, quantity, amount
		) VALUES (?, ?, ?, ?, ?)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = i.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}

	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err = stmt.ExecContext(ctx,
			record.TxnDate,
			record.ItemKey,
			record.RegionKey,
			record.Quantity,
			record.Amount,
		)
		if err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}

	return nil
}

// StoreFactory opens a DuckDB-backed transaction store. The config path
// is the database file path (":memory:" for ephemeral stores).
func StoreFactory(dbPath string) (storesales.Store, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return nil, fmt.Errorf("open duckdb at %q: %w", dbPath, err)
	}
	return storesql.NewStore(db)
}
