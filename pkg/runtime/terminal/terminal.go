package terminal

import (
	"io"
	"os"

	"github.com/de-tools/sales-insights/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-insights/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-insights/pkg/store/sales"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry sales.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry sales.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales-insights",
		Short: "Demand and revenue forecasting over a sales transaction store",
	}

	cmd.AddCommand(commands.NewForecastCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewPlatformsCmd(cli.registry))

	return cmd
}
