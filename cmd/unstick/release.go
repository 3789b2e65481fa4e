package main

import (
	"github.com/spf13/cobra"

	"github.com/emmett/unstick/internal/output"
)

func newReleaseCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Release all held modifier keys once",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := output.NewFormatter(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			r, err := opts.releaser()
			if err != nil {
				return err
			}

			out, releaseErr := r.Release(cmd.Context())
			if err := formatter.WriteResult(output.NewReleaseResult(out, releaseErr)); err != nil {
				return err
			}
			return releaseErr
		},
	}

	cmd.Flags().StringVar(&format, "format", "console", "Output format: console, json")
	return cmd
}
