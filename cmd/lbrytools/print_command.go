package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"lbrytools/internal/config"
	"lbrytools/internal/output"
)

func newPrintCommand(ctx *commandContext) *cobra.Command {
	var filePath string
	var dated bool

	cmd := &cobra.Command{
		Use:   "print [lines...]",
		Short: "Print lines to stdout or to a file",
		Long: "Join the arguments, or standard input lines when no arguments are given,\n" +
			"and print them. With --file the content goes to that file instead; --date\n" +
			"prefixes the file name with YYYYMMDD_HHMM_.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRuntime(cmd, func(cfg *config.Config, logger *slog.Logger) error {
				lines, err := inputLines(args, cmd.InOrStdin())
				if err != nil {
					return err
				}
				timestamp := cfg.Output.Timestamp
				if cmd.Flags().Changed("date") {
					timestamp = dated
				}
				writer := &output.Writer{Stdout: cmd.OutOrStdout(), Logger: logger, Now: time.Now}
				writer.Print(lines, filePath, timestamp)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&dated, "date", false, "Prefix the file name with the current date and time")
	return cmd
}
