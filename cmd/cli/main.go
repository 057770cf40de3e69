package main

import (
	"fmt"
	"os"

	"github.com/de-tools/sales-insights/pkg/runtime/terminal"
	"github.com/de-tools/sales-insights/pkg/store/databricks"
	duckdbsales "github.com/de-tools/sales-insights/pkg/store/duckdb/sales"
	"github.com/de-tools/sales-insights/pkg/store/sales"
	"github.com/de-tools/sales-insights/pkg/store/snowflake"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: sales.NewRegistry(map[string]sales.StoreFactory{
			"duckdb":     duckdbsales.StoreFactory,
			"snowflake":  snowflake.StoreFactory,
			"databricks": databricks.StoreFactory,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
