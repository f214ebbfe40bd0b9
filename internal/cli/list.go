package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/maxviazov/beauty-pagination/internal/format"
	"github.com/maxviazov/beauty-pagination/internal/model"
	"github.com/maxviazov/beauty-pagination/internal/service"
	"github.com/maxviazov/beauty-pagination/pkg/response"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

func newProductsCmd(a *app) *cobra.Command {
	var (
		q        service.ProductQuery
		minPrice float64
		maxPrice float64
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List one page of the product catalog",
		Long: `Lists catalog products, newest first, filtered by category, price range
and free-text search. A page past the end shows the last page.
--size -1 shows every matching product on one page.`,
		Example: `  pager products --category Skincare --page 2
  pager products --min-price 20 --max-price 50 --search creme`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("min-price") {
				q.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				q.MaxPrice = &maxPrice
			}
			svc, err := a.catalog()
			if err != nil {
				return err
			}
			res, err := svc.ListProducts(cmd.Context(), q)
			if err != nil {
				return err
			}
			return writeList(cmd.OutOrStdout(), a, res, "products", productRow, "NAME\tPRICE\tDATE\tCATEGORIES\tSLUG")
		},
	}

	cmd.Flags().StringVar(&q.Category, "category", "", "only products in this category (case-insensitive)")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price in euros")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price in euros")
	cmd.Flags().StringVar(&q.Search, "search", "", "words to find in name, intro or description (accents ignored)")
	cmd.Flags().IntVar(&q.Page, "page", 1, "page to show, 1-based")
	cmd.Flags().IntVar(&q.PageSize, "size", 0, "products per page, -1 for all (default from config)")
	return cmd
}

func newArticlesCmd(a *app) *cobra.Command {
	var q service.ArticleQuery
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "List one page of blog articles",
		Example: `  pager articles --category Beauty
  pager articles --search "routine beaute" --page 2`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.blog()
			if err != nil {
				return err
			}
			res, err := svc.ListArticles(cmd.Context(), q)
			if err != nil {
				return err
			}
			return writeList(cmd.OutOrStdout(), a, res, "articles", articleRow, "TITLE\tDATE\tCATEGORIES\tSLUG")
		},
	}

	cmd.Flags().StringVar(&q.Category, "category", "", "only articles in this category (case-insensitive)")
	cmd.Flags().StringVar(&q.Search, "search", "", "words to find in title, intro or description (accents ignored)")
	cmd.Flags().IntVar(&q.Page, "page", 1, "page to show, 1-based")
	cmd.Flags().IntVar(&q.PageSize, "size", 0, "articles per page, -1 for all (default from config)")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	var blog bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List catalog (or blog) categories with their entry counts",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				counts []service.CategoryCount
				err    error
			)
			if blog {
				svc, serr := a.blog()
				if serr != nil {
					return serr
				}
				counts, err = svc.Categories(cmd.Context())
			} else {
				svc, serr := a.catalog()
				if serr != nil {
					return serr
				}
				counts, err = svc.Categories(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.asJSON() {
				return response.WriteData(out, counts)
			}
			tw := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tCOUNT")
			for _, c := range counts {
				fmt.Fprintf(tw, "%s\t%d\n", c.Name, c.Count)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&blog, "blog", false, "count blog article categories instead of products")
	return cmd
}

func newRecentCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recently issued products",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.catalog()
			if err != nil {
				return err
			}
			products, err := svc.RecentProducts(cmd.Context(), n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.asJSON() {
				return response.WriteData(out, products)
			}
			tw := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPRICE\tDATE\tCATEGORIES\tSLUG")
			for _, p := range products {
				fmt.Fprintln(tw, productRow(p))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 3, "number of products")
	return cmd
}

// writeList prints one page: a summary line, the table, then the strip.
func writeList[T any](w io.Writer, a *app, res service.ListResult[T], noun string, row func(T) string, header string) error {
	if a.asJSON() {
		return response.WriteData(w, res)
	}
	if res.Total == 0 {
		fmt.Fprintf(w, "No %s found.\n", noun)
		return nil
	}

	first := (res.Page-1)*res.PageSize + 1
	last := first + len(res.Items) - 1
	fmt.Fprintf(w, "%s %d-%d of %d (page %d/%d)\n", strings.ToUpper(noun[:1])+noun[1:], first, last, res.Total, res.Page, res.TotalPages)

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, item := range res.Items {
		fmt.Fprintln(tw, row(item))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if line := a.renderer(w).Render(res.Strip); line != "" {
		fmt.Fprintln(w, line)
	}
	return nil
}

func productRow(p model.Product) string {
	return strings.Join([]string{
		p.Name,
		format.Price(p.Price),
		format.FrenchDateOf(p.IssueDate),
		strings.Join(p.Categories, ", "),
		format.Slug(p.Name, p.DocumentID),
	}, "\t")
}

func articleRow(a model.Article) string {
	return strings.Join([]string{
		a.Title,
		format.FrenchDateOf(a.IssueDate),
		strings.Join(a.Categories, ", "),
		format.Slug(a.Title, a.DocumentID),
	}, "\t")
}
