package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emmett/unstick/internal/server/mcp"
)

func newMCPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve release tools over the Model Context Protocol (stdio)",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.releaser()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := mcp.NewServer(mcp.Config{
				ServerName:    "unstick-mcp",
				ServerVersion: Version,
				Releaser:      r,
			})

			log.Infof("MCP server ready (version %s, commit %s), listening on stdin/stdout", Version, GitCommit)
			if err := server.Start(ctx); err != nil && ctx.Err() == nil {
				return fmt.Errorf("MCP server error: %w", err)
			}
			return nil
		},
	}
}
