package sql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/sales-insights/pkg/store/sales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesStore_FetchTransactions_ShouldReturnRecords(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	cols := []string{"txn_date", "item_key", "region_key", "quantity", "amount"}
	rows := sqlmock.NewRows(cols).
		AddRow(start, "item-1", "region-9", 12.0, 240.0).
		AddRow(start.AddDate(0, 0, 2), "item-1", "region-9", 3.0, 60.0)

	query := regexp.QuoteMeta(`
		SELECT
			txn_date,
			item_key,
			region_key,
			SUM(quantity) AS quantity,
			SUM(amount) AS amount
		FROM sales_transactions
		WHERE txn_date >= ? AND txn_date <= ?
		GROUP BY txn_date, item_key, region_key
		ORDER BY txn_date`)
	mock.ExpectQuery(query).WithArgs(start, end).WillReturnRows(rows)

	s, err := NewStore(db)
	require.NoError(t, err)

	records, err := s.FetchTransactions(context.Background(), sales.TxnQuery{Start: start, End: end})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "item-1", records[0].ItemKey)
	assert.Equal(t, 12.0, records[0].Quantity)
	assert.Equal(t, 240.0, records[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesStore_FetchTransactions_ShouldApplyDimensionFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
		SELECT
			txn_date,
			item_key,
			region_key,
			SUM(quantity) AS quantity,
			SUM(amount) AS amount
		FROM sales_transactions
		WHERE txn_date >= ? AND txn_date <= ? AND item_key = ? AND region_key = ?
		GROUP BY txn_date, item_key, region_key
		ORDER BY txn_date`)
	mock.ExpectQuery(query).
		WithArgs(start, end, "item-7", "region-2").
		WillReturnRows(sqlmock.NewRows([]string{"txn_date", "item_key", "region_key", "quantity", "amount"}))

	s, err := NewStore(db)
	require.NoError(t, err)

	records, err := s.FetchTransactions(context.Background(), sales.TxnQuery{
		Start: start,
		End:   end,
		Filters: map[string]string{
			sales.DimensionProduct: "item-7",
			sales.DimensionRegion:  "region-2",
		},
	})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesStore_FetchTransactions_ShouldRejectUnknownDimension(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	_, err = s.FetchTransactions(context.Background(), sales.TxnQuery{
		Start:   time.Now(),
		End:     time.Now(),
		Filters: map[string]string{"warehouse": "x"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDimension)
}

func TestSalesStore_LatestTxnDate(t *testing.T) {
	t.Run("returns latest date", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		latest := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT MAX(txn_date) FROM sales_transactions`)).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(latest))

		s, err := NewStore(db)
		require.NoError(t, err)

		got, err := s.LatestTxnDate(context.Background())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Equal(latest))
	})

	t.Run("empty table yields nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT MAX(txn_date) FROM sales_transactions`)).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

		s, err := NewStore(db)
		require.NoError(t, err)

		got, err := s.LatestTxnDate(context.Background())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
