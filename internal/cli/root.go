// Package cli is the pager command line: page strips for arbitrary lists,
// and the paginated catalog and blog views over a CMS content snapshot.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/maxviazov/beauty-pagination/pkg/response"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(&app{}, version)
}

func newRootCmd(a *app, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pager",
		Short:         "Page strips and paginated content views",
		Long:          "pager computes pagination strips and pages through the catalog and blog of a CMS content snapshot.",
		Version:       version,
		Example:       rootCmdExample,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to a YAML config file (APP_* env vars override it)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", outputText, "output format: text or json")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", response.ErrUsage, err)
	})

	cmd.AddCommand(
		newRangeCmd(a),
		newProductsCmd(a),
		newArticlesCmd(a),
		newArticleCmd(a),
		newCategoriesCmd(a),
		newRecentCmd(a),
		newSlugCmd(a),
	)
	return cmd
}

// Execute runs the command line and returns the process exit code.
// Errors are printed to stderr, as a JSON envelope when --output json is set.
func Execute(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	cmd := newRootCmd(a, version)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	defer func() { _ = a.close() }()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if a.ready {
			a.log.Debug().Err(err).Msg("command failed")
		}
		return response.WriteError(stderr, err, a.output == outputJSON)
	}
	return response.ExitOK
}

// usageArgs wraps a positional argument validator so its failures map to ErrUsage.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", response.ErrUsage, err)
		}
		return nil
	}
}

const rootCmdExample = `  # Strip for page 5 of 100 items, 10 per page
  pager range --total 100 --size 10 --page 5

  # Same strip as JSON
  pager range --total 100 --size 10 --page 5 -o json

  # Second page of skincare products under 50 euros
  pager products --category Skincare --max-price 50 --page 2

  # Search the blog
  pager articles --search "routine beaute"

  # Open an article from its URL slug
  pager article beaute-naturelle-a-paris-doc456

  # Build the slug for a title
  pager slug "Beauté Naturelle à Paris" doc456`
