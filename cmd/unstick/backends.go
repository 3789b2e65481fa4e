package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emmett/unstick/internal/modifiers"
)

func newBackendsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List release backends in fallback order",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.releaser()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, st := range modifiers.Available(r.Backends()) {
				found := "not found"
				if st.Found {
					found = st.Path
				}
				fmt.Fprintf(out, "%d. %-8s %s %s\n     %s\n", i+1, st.Backend.Name,
					st.Backend.Command, strings.Join(st.Backend.Args(), " "), found)
			}
			return nil
		},
	}
}
