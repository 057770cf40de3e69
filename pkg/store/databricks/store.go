package databricks

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/databricks/databricks-sql-go"
	"github.com/de-tools/sales-insights/pkg/store/sales"
	storesql "github.com/de-tools/sales-insights/pkg/store/sql"
)

// StoreFactory opens a Databricks SQL warehouse backed transaction store
// from a connection profile.
func StoreFactory(configPath string) (sales.Store, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dsn := fmt.Sprintf("token:%s@%s%s", cfg.Token, cfg.Host, cfg.HTTPPath)

	params := url.Values{}
	if cfg.Catalog != "" {
		params.Set("catalog", cfg.Catalog)
	}
	if cfg.Schema != "" {
		params.Set("schema", cfg.Schema)
	}
	if qp := params.Encode(); qp != "" {
		dsn = dsn + "?" + qp
	}

	db, err := sql.Open("databricks", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Databricks: %w", err)
	}

	return storesql.NewStore(db)
}
