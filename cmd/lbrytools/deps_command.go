package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lbrytools/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Show availability of external binaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := deps.CheckBinaries(deps.DaemonRequirements(cfg))
			rows := make([][]string, 0, len(results))
			missing := 0
			for _, status := range results {
				state := "available"
				if !status.Available {
					state = "missing"
					if !status.Optional {
						missing++
					}
				}
				rows = append(rows, []string{
					status.Name,
					status.Command,
					status.Path,
					yesNo(!status.Optional),
					state,
					strings.TrimSpace(status.Description + " " + status.Detail),
				})
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderSectionHeader("Dependencies", colorize))
			fmt.Fprintln(out, renderTable(
				[]string{"Name", "Command", "Resolved", "Required", "Status", "Notes"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignCenter, alignCenter, alignLeft},
			))
			if missing > 0 {
				fmt.Fprintln(out, renderStatusLine("deps", statusError, fmt.Sprintf("required binaries missing: %d", missing), colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("deps", statusOK, "all required binaries found", colorize))
			}
			return nil
		},
	}
}
