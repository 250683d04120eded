// Package cmd implements the CLI commands for docmark using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "docmark",
		Short: "docmark: export story documents as Markdown",
		Long: `docmark exports story-step documents to Markdown files, and to JSON,
PDF or HTML views of the same Markdown.

Documents come from a JSON listing on disk or from web pages that are
fetched and turned into documents.

Usage:
  docmark convert <source> [flags]`,
		SilenceUsage: true,
	}
	root.AddCommand(newConvertCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
