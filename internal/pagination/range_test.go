package pagination_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/beauty-pagination/internal/pagination"
)

var dots = pagination.Ellipsis

func pages(ns ...int) []pagination.Token {
	out := make([]pagination.Token, 0, len(ns))
	for _, n := range ns {
		out = append(out, pagination.Page(n))
	}
	return out
}

func seq(parts ...[]pagination.Token) []pagination.Token {
	var out []pagination.Token
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func one(t pagination.Token) []pagination.Token { return []pagination.Token{t} }

func TestRange_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		req  pagination.Request
		want []pagination.Token
	}{
		{
			name: "few pages render the full range",
			req:  pagination.Request{TotalCount: 50, PageSize: 10, CurrentPage: 1, SiblingCount: 1},
			want: pages(1, 2, 3, 4, 5),
		},
		{
			name: "first page collapses the right side",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: 1, SiblingCount: 1},
			want: seq(pages(1, 2, 3, 4, 5), one(dots), pages(10)),
		},
		{
			name: "last page collapses the left side",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: 10, SiblingCount: 1},
			want: seq(pages(1), one(dots), pages(6, 7, 8, 9, 10)),
		},
		{
			name: "middle page collapses both sides",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: 5, SiblingCount: 1},
			want: seq(pages(1), one(dots), pages(4, 5, 6), one(dots), pages(10)),
		},
		{
			name: "single page",
			req:  pagination.Request{TotalCount: 5, PageSize: 10, CurrentPage: 1, SiblingCount: 1},
			want: pages(1),
		},
		{
			name: "no items",
			req:  pagination.Request{TotalCount: 0, PageSize: 10, CurrentPage: 1, SiblingCount: 1},
			want: []pagination.Token{},
		},
		{
			name: "page zero is not ready",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: 0, SiblingCount: 1},
			want: []pagination.Token{},
		},
		{
			name: "negative page is not ready",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: -3, SiblingCount: 1},
			want: []pagination.Token{},
		},
		{
			name: "two siblings in the middle",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: 5, SiblingCount: 2},
			want: seq(pages(1), one(dots), pages(3, 4, 5, 6, 7), one(dots), pages(10)),
		},
		{
			name: "near the end",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: 9, SiblingCount: 1},
			want: seq(pages(1), one(dots), pages(6, 7, 8, 9, 10)),
		},
		{
			name: "near the start",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: 2, SiblingCount: 1},
			want: seq(pages(1, 2, 3, 4, 5), one(dots), pages(10)),
		},
		{
			name: "partial last page rounds up",
			req:  pagination.Request{TotalCount: 95, PageSize: 10, CurrentPage: 1, SiblingCount: 1},
			want: seq(pages(1, 2, 3, 4, 5), one(dots), pages(10)),
		},
		{
			name: "larger page size shrinks the strip",
			req:  pagination.Request{TotalCount: 100, PageSize: 20, CurrentPage: 1, SiblingCount: 1},
			want: pages(1, 2, 3, 4, 5),
		},
		{
			name: "left sibling at page three hides page two only",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: 4, SiblingCount: 1},
			want: seq(pages(1), one(dots), pages(3, 4, 5), one(dots), pages(10)),
		},
		{
			name: "left sibling at page two keeps it explicit",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: 3, SiblingCount: 1},
			want: seq(pages(1, 2, 3, 4, 5), one(dots), pages(10)),
		},
		{
			name: "right sibling one before last keeps it explicit",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: 8, SiblingCount: 1},
			want: seq(pages(1), one(dots), pages(6, 7, 8, 9, 10)),
		},
		{
			name: "zero siblings",
			req:  pagination.Request{TotalCount: 10, PageSize: 1, CurrentPage: 5, SiblingCount: 0},
			want: seq(pages(1), one(dots), pages(5), one(dots), pages(10)),
		},
		{
			name: "current page beyond the last page",
			req:  pagination.Request{TotalCount: 100, PageSize: 10, CurrentPage: 42, SiblingCount: 1},
			want: seq(pages(1), one(dots), pages(6, 7, 8, 9, 10)),
		},
		{
			name: "exactly 2k+5 pages never collapse",
			req:  pagination.Request{TotalCount: 7, PageSize: 1, CurrentPage: 4, SiblingCount: 1},
			want: pages(1, 2, 3, 4, 5, 6, 7),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pagination.Range(tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRange_InvalidRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     pagination.Request
		errPart string
	}{
		{"zero page size", pagination.Request{TotalCount: 10, PageSize: 0, CurrentPage: 1}, "PageSize"},
		{"negative page size", pagination.Request{TotalCount: 10, PageSize: -5, CurrentPage: 1}, "PageSize"},
		{"negative siblings", pagination.Request{TotalCount: 10, PageSize: 5, CurrentPage: 1, SiblingCount: -1}, "SiblingCount"},
		{"negative total", pagination.Request{TotalCount: -1, PageSize: 5, CurrentPage: 1}, "TotalCount"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pagination.Range(tc.req)
			require.ErrorIs(t, err, pagination.ErrInvalidRequest)
			assert.Contains(t, err.Error(), tc.errPart)
			assert.Nil(t, got)
		})
	}

	t.Run("invalid config wins over page zero", func(t *testing.T) {
		_, err := pagination.Range(pagination.Request{TotalCount: 10, PageSize: 0, CurrentPage: 0})
		assert.ErrorIs(t, err, pagination.ErrInvalidRequest)
	})
}

func TestMustRange(t *testing.T) {
	assert.Equal(t, pages(1, 2), pagination.MustRange(pagination.Request{TotalCount: 20, PageSize: 10, CurrentPage: 1}))
	assert.Panics(t, func() {
		pagination.MustRange(pagination.Request{TotalCount: 20, PageSize: 0, CurrentPage: 1})
	})
}

func TestRequest_TotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 10, 10},
		{math.MaxInt, 1, math.MaxInt},
		{math.MaxInt, 2, math.MaxInt/2 + 1},
		{10, 0, 0},
	}
	for _, tc := range tests {
		got := pagination.Request{TotalCount: tc.total, PageSize: tc.size}.TotalPages()
		assert.Equal(t, tc.want, got, "total=%d size=%d", tc.total, tc.size)
	}
}

func TestRange_ExtremeInputsDoNotOverflow(t *testing.T) {
	got, err := pagination.Range(pagination.Request{
		TotalCount: math.MaxInt, PageSize: 1, CurrentPage: math.MaxInt, SiblingCount: 1,
	})
	require.NoError(t, err)
	last := math.MaxInt
	assert.Equal(t, seq(pages(1), one(dots), pages(last-4, last-3, last-2, last-1, last)), got)

	got, err = pagination.Range(pagination.Request{
		TotalCount: 100, PageSize: 10, CurrentPage: 5, SiblingCount: math.MaxInt,
	})
	require.NoError(t, err)
	assert.Equal(t, pages(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), got)

	got, err = pagination.Range(pagination.Request{
		TotalCount: 1000, PageSize: 10, CurrentPage: math.MaxInt, SiblingCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, seq(pages(1), one(dots), pages(94, 95, 96, 97, 98, 99, 100)), got)
}

// TestRange_Properties sweeps a grid of small inputs, which is where the
// off-by-one boundaries around the ellipses live.
func TestRange_Properties(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for siblings := 0; siblings <= 4; siblings++ {
			for current := 1; current <= total+2; current++ {
				req := pagination.Request{TotalCount: total, PageSize: 1, CurrentPage: current, SiblingCount: siblings}
				got, err := pagination.Range(req)
				require.NoError(t, err)

				again, _ := pagination.Range(req)
				require.Equal(t, got, again, "idempotence %+v", req)

				checkStrip(t, req, got)
			}
		}
	}
}

func checkStrip(t *testing.T, req pagination.Request, got []pagination.Token) {
	t.Helper()
	total := req.TotalPages()
	if total == 0 {
		require.Empty(t, got, "%+v", req)
		return
	}

	nums := pagination.Pages(got)
	for i := 1; i < len(nums); i++ {
		require.Greater(t, nums[i], nums[i-1], "strictly increasing %+v: %v", req, got)
	}
	require.Equal(t, 1, nums[0], "%+v", req)
	require.Equal(t, total, nums[len(nums)-1], "%+v", req)

	collapsed := 2*req.SiblingCount+5 < total
	if !collapsed {
		require.Len(t, got, total, "full range expected %+v", req)
		require.Len(t, nums, total)
		return
	}
	require.Len(t, got, 2*req.SiblingCount+5, "constant strip width %+v: %v", req, got)
	require.False(t, got[0].IsEllipsis())
	require.False(t, got[len(got)-1].IsEllipsis())

	for i, tok := range got {
		if !tok.IsEllipsis() {
			continue
		}
		prev, _ := got[i-1].Number()
		next, ok := got[i+1].Number()
		require.True(t, ok, "adjacent ellipses %+v: %v", req, got)
		require.Greater(t, next-prev, 1, "ellipsis must hide at least one page %+v: %v", req, got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].IsEllipsis() {
			continue
		}
		if got[i-1].IsEllipsis() {
			continue
		}
		a, _ := got[i-1].Number()
		b, _ := got[i].Number()
		require.Equal(t, a+1, b, "gap without ellipsis %+v: %v", req, got)
	}

	if req.CurrentPage <= total {
		lo := max(req.CurrentPage-req.SiblingCount, 1)
		hi := min(req.CurrentPage+req.SiblingCount, total)
		for p := lo; p <= hi; p++ {
			require.Contains(t, nums, p, "sibling window %+v: %v", req, got)
		}
	}
}

func TestToken(t *testing.T) {
	p := pagination.Page(7)
	n, ok := p.Number()
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	assert.False(t, p.IsEllipsis())
	assert.Equal(t, "7", p.String())
	assert.Equal(t, pagination.KindPage, p.Kind())

	n, ok = pagination.Ellipsis.Number()
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.True(t, pagination.Ellipsis.IsEllipsis())
	assert.Equal(t, "…", pagination.Ellipsis.String())

	assert.Equal(t, pagination.KindInvalid, pagination.Token{}.Kind())
	assert.Equal(t, "?", pagination.Token{}.String())
	assert.NotEqual(t, pagination.Ellipsis, pagination.Page(0))

	raw, err := json.Marshal(seq(pages(1), one(dots), pages(10)))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,"…",10]`, string(raw))
}
