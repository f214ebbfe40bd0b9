package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxviazov/beauty-pagination/internal/format"
	"github.com/maxviazov/beauty-pagination/internal/model"
	"github.com/maxviazov/beauty-pagination/pkg/response"
)

// articleView adds the display fields a blog page shows next to the article.
type articleView struct {
	model.Article
	Slug string `json:"slug"`
	Date string `json:"date"`
}

func newArticleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "article <slug>",
		Short:   "Show the blog article behind a URL slug",
		Long:    "Resolves a blog slug (\"<title>-<documentId>\") by its trailing document id, so links built from an older title still work.",
		Example: "  pager article beaute-naturelle-a-paris-doc456",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.blog()
			if err != nil {
				return err
			}
			art, err := svc.GetArticle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			view := articleView{
				Article: art,
				Slug:    format.Slug(art.Title, art.DocumentID),
				Date:    format.FrenchDateOf(art.IssueDate),
			}

			out := cmd.OutOrStdout()
			if a.asJSON() {
				return response.WriteData(out, view)
			}
			fmt.Fprintln(out, view.Title)
			fmt.Fprintln(out, view.Date)
			if len(view.Categories) > 0 {
				fmt.Fprintln(out, strings.Join(view.Categories, ", "))
			}
			if view.Intro != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, view.Intro)
			}
			if view.VideoURL != "" {
				fmt.Fprintln(out, "video:", view.VideoURL)
			}
			fmt.Fprintln(out, "slug:", view.Slug)
			return nil
		},
	}
}

func newSlugCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "slug <title> <documentId>",
		Short:   "Build the URL slug for a title and document id",
		Example: `  pager slug "Beauté Naturelle à Paris" doc456`,
		Args:    usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := format.Slug(args[0], args[1])
			if a.asJSON() {
				return response.WriteData(cmd.OutOrStdout(), map[string]string{"slug": slug})
			}
			fmt.Fprintln(cmd.OutOrStdout(), slug)
			return nil
		},
	}
}
