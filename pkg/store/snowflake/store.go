package snowflake

import (
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-insights/pkg/store/sales"
	storesql "github.com/de-tools/sales-insights/pkg/store/sql"
	sf "github.com/snowflakedb/gosnowflake"
)

// StoreFactory opens a Snowflake-backed transaction store from a
// connection profile.
func StoreFactory(configPath string) (sales.Store, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dsn, err := sf.DSN(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create DSN: %w", err)
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Snowflake: %w", err)
	}

	return storesql.NewStore(db)
}
