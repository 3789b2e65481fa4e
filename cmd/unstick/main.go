package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emmett/unstick/internal/config"
	"github.com/emmett/unstick/internal/logging"
	"github.com/emmett/unstick/internal/modifiers"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
	GitBranch = "unknown"
)

// options are the global flags plus the config they resolve to
type options struct {
	configFile string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	releaseCmd := newReleaseCmd(opts)

	rootCmd := &cobra.Command{
		Use:   "unstick",
		Short: "Release held keyboard modifiers on Wayland",
		Long: `unstick releases Shift, Ctrl, Alt and Super before text is typed, so that
modifiers still held from a compositor keybinding do not turn typed text into
shortcuts. wtype is tried first, ydotool is the fallback.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: releaseCmd.RunE,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to configuration file (default: ~/.unstickrc or /etc/unstick/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error, off")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format: text, json")
	rootCmd.Flags().AddFlagSet(releaseCmd.Flags())

	rootCmd.AddCommand(
		releaseCmd,
		newBackendsCmd(opts),
		newMCPCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// load reads the config file and applies it under any flags set explicitly
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.LoadWithFallback(o.configFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	flags := cmd.Flags()
	if !flags.Changed("log-level") && cfg.Logging.Level != "" {
		o.logLevel = cfg.Logging.Level
	}
	if !flags.Changed("log-format") && cfg.Logging.Format != "" {
		o.logFormat = cfg.Logging.Format
	}

	return logging.Configure(o.logLevel, o.logFormat)
}

func (o *options) releaser() (*modifiers.Releaser, error) {
	backends, err := o.cfg.Backends()
	if err != nil {
		return nil, err
	}
	return modifiers.NewReleaser(nil, backends...), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "unstick v%s\n", Version)
			fmt.Fprintf(out, "  Commit:  %s\n", GitCommit)
			fmt.Fprintf(out, "  Branch:  %s\n", GitBranch)
			fmt.Fprintf(out, "  Built:   %s\n", BuildTime)
		},
	}
}
