package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/beauty-pagination/internal/cli"
	"github.com/maxviazov/beauty-pagination/pkg/response"
)

// writeSnapshot stores 14 Skincare products (p1..p14, issued 2024-01-01..14)
// and two articles, and points the CLI at it.
func writeSnapshot(t *testing.T) {
	t.Helper()
	var b strings.Builder
	b.WriteString("products:\n")
	for i := 1; i <= 14; i++ {
		fmt.Fprintf(&b, "  - id: \"%d\"\n    documentId: p%d\n    name: Produit %02d\n    price: %d\n    issueDate: \"2024-01-%02d\"\n    categories: [Skincare]\n", i, i, i, 5*i, i)
	}
	b.WriteString(`articles:
  - id: 1
    documentId: doc456
    title: Beauté Naturelle à Paris
    intro: Une routine simple.
    issueDate: "2024-08-01"
    categories: [Beauty]
  - id: 2
    documentId: doc789
    title: Maquillage d'été
    issueDate: "2024-06-15"
    categories: [Makeup, beauty]
`)
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	t.Setenv("APP_CONTENT_SNAPSHOT_PATH", path)
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("APP_LOGGER_LEVEL", "error")
	var stdout, stderr bytes.Buffer
	code := cli.Execute(context.Background(), "test", args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRange_Text(t *testing.T) {
	code, out, errOut := run(t, "range", "--total", "100", "--size", "10", "--page", "5")
	require.Equal(t, response.ExitOK, code, errOut)
	assert.Equal(t, "1 … 4 5 6 … 10\n‹ 1 … 4 [5] 6 … 10 ›\n", out)
}

func TestRange_JSON(t *testing.T) {
	code, out, errOut := run(t, "range", "--total", "100", "--size", "10", "--page", "5", "-o", "json")
	require.Equal(t, response.ExitOK, code, errOut)

	var got struct {
		TotalPages int   `json:"total_pages"`
		Tokens     []any `json:"tokens"`
		Strip      struct {
			Hidden bool `json:"hidden"`
		} `json:"strip"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 10, got.TotalPages)
	assert.Equal(t, []any{1.0, "…", 4.0, 5.0, 6.0, "…", 10.0}, got.Tokens)
	assert.False(t, got.Strip.Hidden)
}

func TestRange_DefaultsComeFromConfig(t *testing.T) {
	t.Setenv("APP_PAGINATION_PAGE_SIZE", "10")
	code, out, _ := run(t, "range", "--total", "20")
	require.Equal(t, response.ExitOK, code)
	assert.Equal(t, "1 2\n‹ [1] 2 ›\n", out)
}

func TestRange_SinglePageHasNoStrip(t *testing.T) {
	code, out, _ := run(t, "range", "--total", "3", "--size", "10")
	require.Equal(t, response.ExitOK, code)
	assert.Equal(t, "1\n", out)
}

func TestRange_InvalidRequest(t *testing.T) {
	code, out, errOut := run(t, "range", "--total", "10", "--size", "0")
	assert.Equal(t, response.ExitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "invalid_request")
	assert.Contains(t, errOut, "PageSize")
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{"range", "--nope"},
		{"range", "--total", "ten"},
		{"range", "--total", "10", "-o", "yaml"},
		{"slug", "only-title"},
		{"article"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, _, errOut := run(t, args...)
			assert.Equal(t, response.ExitUsage, code)
			assert.Contains(t, errOut, "usage")
		})
	}
}

func TestProducts_Page(t *testing.T) {
	writeSnapshot(t)
	code, out, errOut := run(t, "products", "--page", "2")
	require.Equal(t, response.ExitOK, code, errOut)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9) // summary, header, 6 rows, strip
	assert.Equal(t, "Products 7-12 of 14 (page 2/3)", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "Produit 08"))
	assert.Contains(t, lines[2], "40,00€")
	assert.Contains(t, lines[2], "8 Janvier 2024")
	assert.Contains(t, lines[2], "produit-08-p8")
	assert.Equal(t, "‹ 1 [2] 3 ›", lines[8])
}

func TestProducts_PagePastTheEndShowsLastPage(t *testing.T) {
	writeSnapshot(t)
	code, out, _ := run(t, "products", "--page", "9")
	require.Equal(t, response.ExitOK, code)
	assert.True(t, strings.HasPrefix(out, "Products 13-14 of 14 (page 3/3)\n"))
}

func TestProducts_FiltersAndJSON(t *testing.T) {
	writeSnapshot(t)
	code, out, errOut := run(t, "products", "--min-price", "20", "--max-price", "30", "-o", "json")
	require.Equal(t, response.ExitOK, code, errOut)

	var got struct {
		Total int `json:"total"`
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3, got.Total)
	require.Len(t, got.Items, 3)
	assert.Equal(t, "Produit 06", got.Items[0].Name)
}

func TestProducts_NoMatches(t *testing.T) {
	writeSnapshot(t)
	code, out, _ := run(t, "products", "--category", "Haircare")
	require.Equal(t, response.ExitOK, code)
	assert.Equal(t, "No products found.\n", out)
}

func TestProducts_InvalidQuery(t *testing.T) {
	writeSnapshot(t)
	code, _, errOut := run(t, "products", "--size", "500", "--min-price", "-1")
	assert.Equal(t, response.ExitUsage, code)
	assert.Contains(t, errOut, "invalid_input")
	assert.Contains(t, errOut, "page_size")
	assert.Contains(t, errOut, "min_price")
}

func TestProducts_MissingSnapshot(t *testing.T) {
	t.Setenv("APP_CONTENT_SNAPSHOT_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	code, _, errOut := run(t, "products")
	assert.Equal(t, response.ExitConfig, code)
	assert.Contains(t, errOut, "invalid_snapshot")
}

func TestArticles(t *testing.T) {
	writeSnapshot(t)
	code, out, errOut := run(t, "articles", "--search", "beaute")
	require.Equal(t, response.ExitOK, code, errOut)
	assert.Contains(t, out, "Articles 1-1 of 1 (page 1/1)")
	assert.Contains(t, out, "1 Août 2024")
	assert.Contains(t, out, "beaute-naturelle-a-paris-doc456")
}

func TestArticle(t *testing.T) {
	writeSnapshot(t)

	code, out, errOut := run(t, "article", "beaute-naturelle-a-paris-doc456")
	require.Equal(t, response.ExitOK, code, errOut)
	assert.Equal(t, "Beauté Naturelle à Paris\n1 Août 2024\nBeauty\n\nUne routine simple.\nslug: beaute-naturelle-a-paris-doc456\n", out)

	code, out, _ = run(t, "article", "an-old-title-doc789", "-o", "json")
	require.Equal(t, response.ExitOK, code)
	assert.Contains(t, out, `"slug": "maquillage-d-ete-doc789"`)
	assert.Contains(t, out, `"date": "15 Juin 2024"`)

	code, _, errOut = run(t, "article", "gone-doc000")
	assert.Equal(t, response.ExitNotFound, code)
	assert.Contains(t, errOut, "not_found")
}

func TestCategories(t *testing.T) {
	writeSnapshot(t)

	code, out, _ := run(t, "categories")
	require.Equal(t, response.ExitOK, code)
	assert.Contains(t, out, "Skincare  14")

	code, out, _ = run(t, "categories", "--blog", "-o", "json")
	require.Equal(t, response.ExitOK, code)
	var got []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Beauty", got[0].Name)
	assert.Equal(t, 2, got[0].Count)
}

func TestRecent(t *testing.T) {
	writeSnapshot(t)
	code, out, _ := run(t, "recent", "-n", "2")
	require.Equal(t, response.ExitOK, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Produit 14"))
	assert.True(t, strings.HasPrefix(lines[2], "Produit 13"))
}

func TestSlug(t *testing.T) {
	code, out, _ := run(t, "slug", "Beauté Naturelle à Paris", "doc456")
	require.Equal(t, response.ExitOK, code)
	assert.Equal(t, "beaute-naturelle-a-paris-doc456\n", out)
}

func TestDebugWritesAndReleasesDebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	t.Setenv("APP_LOGGER_ENV", "dev")
	t.Setenv("APP_LOGGER_DEBUG_FILE", path)

	code, _, errOut := run(t, "--debug", "range", "--total", "30", "--size", "10")
	require.Equal(t, response.ExitOK, code, errOut)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "range computed")
	require.NoError(t, os.Remove(path))
}
