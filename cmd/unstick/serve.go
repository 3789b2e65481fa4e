package main

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	grpcserver "github.com/emmett/unstick/internal/server/grpc"
)

func newServeCmd(opts *options) *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the modifier release RPC over gRPC",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("host") && opts.cfg.Server.Host != "" {
				host = opts.cfg.Server.Host
			}
			if !cmd.Flags().Changed("port") && opts.cfg.Server.Port > 0 {
				port = opts.cfg.Server.Port
			}
			r, err := opts.releaser()
			if err != nil {
				return err
			}

			server := grpcserver.NewServer(grpcserver.Config{
				Host:     host,
				Port:     port,
				Releaser: r,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				log.Info("Shutting down...")
				server.Stop()
			}()

			return server.Start()
		},
	}

	cmd.Flags().StringVar(&host, "host", "localhost", "gRPC listen host")
	cmd.Flags().IntVar(&port, "port", 50051, "gRPC server port")
	return cmd
}
