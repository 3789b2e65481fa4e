// unstick-listen releases held modifiers every time a global hotkey is
// pressed. It is a separate binary from unstick because the hotkey library
// needs an X11 display as soon as the process starts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emmett/unstick/internal/app"
	"github.com/emmett/unstick/internal/config"
	"github.com/emmett/unstick/internal/input"
	"github.com/emmett/unstick/internal/logging"
	"github.com/emmett/unstick/internal/modifiers"
	"github.com/emmett/unstick/internal/output"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
	GitBranch = "unknown"
)

// hotkeyTrigger adapts the global hotkey manager to app.TriggerFactory
func hotkeyTrigger(onPress func()) app.Trigger {
	return input.NewHotkeyManager(onPress)
}

func main() {
	if err := newRootCmd(hotkeyTrigger).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(trigger app.TriggerFactory) *cobra.Command {
	var configFile, logLevel, logFormat, hotkey, format string
	var showVersion bool

	cmd := &cobra.Command{
		Use:           "unstick-listen",
		Short:         "Release modifiers every time a global hotkey is pressed",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "unstick-listen v%s (commit: %s, branch: %s, built: %s)\n",
					Version, GitCommit, GitBranch, BuildTime)
				return nil
			}

			cfg, err := config.LoadWithFallback(configFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("log-level") && cfg.Logging.Level != "" {
				logLevel = cfg.Logging.Level
			}
			if !flags.Changed("log-format") && cfg.Logging.Format != "" {
				logFormat = cfg.Logging.Format
			}
			if !flags.Changed("hotkey") && cfg.Hotkey.Combo != "" {
				hotkey = cfg.Hotkey.Combo
			}
			if err := logging.Configure(logLevel, logFormat); err != nil {
				return err
			}

			formatter, err := output.NewFormatter(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			backends, err := cfg.Backends()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.NewListener(app.ListenerConfig{
				Hotkey:    hotkey,
				Releaser:  modifiers.NewReleaser(nil, backends...),
				Formatter: formatter,
				Trigger:   trigger,
			}).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Path to configuration file (default: ~/.unstickrc or /etc/unstick/config.yaml)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error, off")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")
	cmd.Flags().StringVar(&hotkey, "hotkey", "ctrl+shift+u", "Hotkey that triggers a release")
	cmd.Flags().StringVar(&format, "format", "console", "Output format: console, json")
	cmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")

	return cmd
}
