package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/sales-insights/pkg/store/sales"
	"github.com/spf13/cobra"
)

type PlatformsCmd struct {
	registry sales.Registry
}

func NewPlatformsCmd(registry sales.Registry) *cobra.Command {
	pc := &PlatformsCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List supported transaction store platforms",
		RunE:  pc.run,
	}
	return cmd
}

func (pc *PlatformsCmd) run(cmd *cobra.Command, args []string) error {
	platforms := pc.registry.ListPlatforms()
	if len(platforms) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No platforms registered")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Supported platforms:\n%s\n", strings.Join(platforms, "\n"))
	return nil
}
