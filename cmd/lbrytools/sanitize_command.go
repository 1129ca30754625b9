package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"lbrytools/internal/config"
	"lbrytools/internal/logging"
	"lbrytools/internal/textutil"
)

func newSanitizeCommand(ctx *commandContext) *cobra.Command {
	var noEmoji bool

	cmd := &cobra.Command{
		Use:   "sanitize [text...]",
		Short: "Replace emoji and flag sequences with a placeholder",
		Long: "Sanitize each argument, or each line of standard input when no arguments\n" +
			"are given. Flag sequences are always replaced; single emoji are replaced\n" +
			"when the emoji dataset is enabled.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRuntime(cmd, func(cfg *config.Config, logger *slog.Logger) error {
				lines, err := inputLines(args, cmd.InOrStdin())
				if err != nil {
					return err
				}

				var set textutil.EmojiSet = textutil.NoEmoji{}
				if cfg.Sanitize.EmojiDataset && !noEmoji {
					set = textutil.DatasetEmoji()
				}
				sanitizer := textutil.NewSanitizer(set)
				logger.Debug("sanitizing names",
					logging.Int("count", len(lines)),
					logging.Bool("emoji_dataset", sanitizer.EmojiAvailable()),
				)

				out := cmd.OutOrStdout()
				for _, line := range sanitizer.SanitizeAll(lines) {
					fmt.Fprintln(out, line)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&noEmoji, "no-emoji", false, "Only replace flag sequences")
	return cmd
}
