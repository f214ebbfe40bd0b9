package repository

// Page represents a simple limit/offset window for listing operations.
// I keep it intentionally small; filtering belongs to higher layers.
type Page struct {
	Limit  int
	Offset int
}

// PageOf converts a 1-based page number into a window. Pages below 1 map to the first page.
func PageOf(number, size int) Page {
	if number < 1 {
		number = 1
	}
	return Page{Limit: size, Offset: (number - 1) * size}
}

// Window returns the items inside p. An offset past the end yields an empty
// slice rather than an error; a non-positive limit means "everything from offset".
func Window[T any](items []T, p Page) []T {
	offset := max(p.Offset, 0)
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if p.Limit > 0 && p.Limit < end-offset {
		end = offset + p.Limit
	}
	return items[offset:end]
}
