package pagination

// fixedSlots counts the strip slots that exist regardless of the sibling
// window: first page, last page, current page and two ellipses.
const fixedSlots = 5

// Range returns the tokens a pagination control should display for req.
//
// An empty result means "render nothing": the current page is below 1 or
// there are no pages at all. When collapsing would not save any slots the
// full range [1..totalPages] is returned. Otherwise the strip is anchored on
// the first and last page with the sibling window around the current page,
// and every collapsed run shows as a single Ellipsis.
//
// A current page beyond the last page is not an error; the result is a best
// effort and callers clamp the page themselves.
func Range(req Request) ([]Token, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return build(req), nil
}

// MustRange is Range for statically configured callers; it panics on an invalid request.
func MustRange(req Request) []Token {
	tokens, err := Range(req)
	if err != nil {
		panic(err)
	}
	return tokens
}

// build assumes req already passed validation.
func build(req Request) []Token {
	if req.CurrentPage < 1 {
		return []Token{}
	}
	total := req.TotalPages()
	siblings := req.SiblingCount

	if !collapses(total, siblings) {
		return pageRun(1, total)
	}

	current := req.CurrentPage
	left := max(current-siblings, 1)
	right := total
	if current <= total-siblings {
		right = current + siblings
	}

	showLeftEllipsis := left > 2
	showRightEllipsis := right < total-1
	// the anchored side always gets the full window width, so every collapsed strip has the same length
	edgeItems := 3 + 2*siblings

	switch {
	case !showLeftEllipsis && showRightEllipsis:
		out := pageRun(1, edgeItems)
		return append(out, Ellipsis, Page(total))

	case showLeftEllipsis && !showRightEllipsis:
		out := make([]Token, 0, edgeItems+2)
		out = append(out, Page(1), Ellipsis)
		return append(out, pageRun(total-edgeItems+1, total)...)

	case showLeftEllipsis && showRightEllipsis:
		out := make([]Token, 0, right-left+5)
		out = append(out, Page(1), Ellipsis)
		out = append(out, pageRun(left, right)...)
		return append(out, Ellipsis, Page(total))

	default:
		// unreachable while collapses() holds, but never worth a crash
		return pageRun(1, total)
	}
}

// collapses reports whether 2*siblings+fixedSlots < total, written so that
// a huge sibling count cannot overflow.
func collapses(total, siblings int) bool {
	if total <= fixedSlots {
		return false
	}
	return siblings < (total-fixedSlots+1)/2
}

// pageRun returns Page tokens for from..to inclusive; empty when to < from.
func pageRun(from, to int) []Token {
	if to < from {
		return []Token{}
	}
	// counted loop: n <= to never turns false when to is math.MaxInt
	count := to - from + 1
	out := make([]Token, count)
	for i := 0; i < count; i++ {
		out[i] = Page(from + i)
	}
	return out
}
