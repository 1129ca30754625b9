package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"lbrytools/internal/config"
	"lbrytools/internal/daemonctl"
	"lbrytools/internal/lbrynet"
)

type checkResult struct {
	Probe           string `json:"probe"`
	Running         bool   `json:"running"`
	LaunchRequested bool   `json:"launch_requested"`
}

func newDaemonCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newCheckCommand(ctx),
		newStartCommand(ctx),
		newPingCommand(ctx),
	}
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that lbrynet runs, starting it when it does not",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRuntime(cmd, func(cfg *config.Config, logger *slog.Logger) error {
				probe, err := daemonctl.New(cfg, logger)
				if err != nil {
					return err
				}
				running, err := probe.Check(cmd.Context())
				if err != nil {
					return err
				}

				result := checkResult{Probe: probe.Describe(), Running: running, LaunchRequested: !running}
				if jsonOutput {
					return writeJSON(cmd, result)
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				if running {
					fmt.Fprintln(out, renderStatusLine("lbrynet", statusOK, "running ("+result.Probe+")", colorize))
					return nil
				}
				binary, startArgs := cfg.StartCommand()
				fmt.Fprintln(out, renderStatusLine("lbrynet", statusWarn,
					"not running; requested "+strings.Join(append([]string{binary}, startArgs...), " "), colorize))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newStartCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Launch the lbrynet daemon in the background",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRuntime(cmd, func(cfg *config.Config, logger *slog.Logger) error {
				binary, startArgs := cfg.StartCommand()
				launcher := daemonctl.NewCommandLauncher(binary, startArgs...)
				launcher.Stderr = cmd.ErrOrStderr()
				if err := launcher.Launch(cmd.Context()); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderStatusLine("lbrynet", statusInfo,
					"launch requested: "+strings.Join(launcher.Args, " "), shouldColorize(out)))
				return nil
			})
		},
	}
}

func newPingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Report whether the lbrynet server answers, without starting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withRuntime(cmd, func(cfg *config.Config, logger *slog.Logger) error {
				client := lbrynet.NewClient(cfg.Daemon.Server, cfg.RequestTimeout())
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				if !daemonctl.ServerExists(cmd.Context(), client, logger) {
					fmt.Fprintln(out, renderStatusLine("lbrynet", statusError, "unreachable at "+client.Server(), colorize))
					return fmt.Errorf("cannot establish connection to 'lbrynet' on %s; start server with: lbrynet start", client.Server())
				}
				fmt.Fprintln(out, renderStatusLine("lbrynet", statusOK, "reachable at "+client.Server(), colorize))
				return nil
			})
		},
	}
}
