// Command lookup-check runs a smoke test against a live server's
// /nikeeta-lookup endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fadilmartias/assessment-board/internal/service"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:          "lookup-check",
		Short:        "Check that the lookup endpoint only returns rows without a task status",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout*3)
			defer cancel()

			svc := service.NewLookupCheckService(baseURL, timeout)
			results, err := svc.Run(ctx, time.Now())
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s total=%d page_size=%d returned=%d\n",
					r.Name, r.Total, r.PageSize, r.Returned)
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "FAILED: %v\n", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8000", "server base URL, including any route prefix")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	return cmd
}
