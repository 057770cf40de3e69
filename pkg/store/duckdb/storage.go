package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const SalesTransactionsSchema = `
	CREATE TABLE IF NOT EXISTS sales_transactions (
		txn_date DATE NOT NULL,
		item_key VARCHAR NOT NULL,
		region_key VARCHAR NOT NULL,
		quantity DOUBLE NOT NULL,
		amount DOUBLE NOT NULL
	);
`

var bootQueries = []string{
	SalesTransactionsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		bootQueries := append([]string{}, bootQueries...)

		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
