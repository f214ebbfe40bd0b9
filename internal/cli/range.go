package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxviazov/beauty-pagination/internal/pageview"
	"github.com/maxviazov/beauty-pagination/internal/pagination"
	"github.com/maxviazov/beauty-pagination/pkg/response"
)

// rangeResult is the JSON shape of `pager range`.
type rangeResult struct {
	Request    pagination.Request `json:"request"`
	TotalPages int                `json:"total_pages"`
	Tokens     []pagination.Token `json:"tokens"`
	Strip      pageview.Strip     `json:"strip"`
}

func newRangeCmd(a *app) *cobra.Command {
	var req pagination.Request
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Compute the page strip for a list",
		Long: `Prints the page numbers and ellipses shown under a list of --total items
split into pages of --size, with --siblings neighbours around --page.

The page is taken as given: a page past the end is not clamped.`,
		Example: `  pager range --total 100 --size 10 --page 5
  pager range --total 500 --size 10 --page 25 --siblings 2 -o json`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("size") {
				req.PageSize = a.cfg.Pagination.PageSize
			}
			if !cmd.Flags().Changed("siblings") {
				req.SiblingCount = a.cfg.Pagination.SiblingCount
			}
			return runRange(cmd, a, req)
		},
	}

	cmd.Flags().IntVar(&req.TotalCount, "total", 0, "number of items in the list")
	cmd.Flags().IntVar(&req.PageSize, "size", 0, "items per page (default from config)")
	cmd.Flags().IntVar(&req.CurrentPage, "page", 1, "current page, 1-based")
	cmd.Flags().IntVar(&req.SiblingCount, "siblings", 0, "pages shown on each side of the current page (default from config)")
	return cmd
}

func runRange(cmd *cobra.Command, a *app, req pagination.Request) error {
	tokens, err := a.calc.Range(req)
	if err != nil {
		return err
	}
	totalPages := req.TotalPages()
	strip := pageview.Build(tokens, req.CurrentPage, totalPages)

	a.log.Debug().
		Int("total_count", req.TotalCount).
		Int("page_size", req.PageSize).
		Int("current_page", req.CurrentPage).
		Int("sibling_count", req.SiblingCount).
		Int("tokens", len(tokens)).
		Msg("range computed")

	out := cmd.OutOrStdout()
	if a.asJSON() {
		return response.WriteData(out, rangeResult{Request: req, TotalPages: totalPages, Tokens: tokens, Strip: strip})
	}

	fmt.Fprintln(out, joinTokens(tokens))
	if line := a.renderer(out).Render(strip); line != "" {
		fmt.Fprintln(out, line)
	}
	return nil
}

func joinTokens(tokens []pagination.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}
