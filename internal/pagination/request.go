// Package pagination computes the page strip shown under paginated lists:
// page numbers around the current page, anchored first and last pages,
// and ellipsis markers where runs of pages are collapsed.
package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultSiblingCount is the number of neighbours shown on each side of the current page.
const DefaultSiblingCount = 1

// ErrInvalidRequest marks a request with an impossible static configuration
// (non-positive page size, negative sibling count or total). It is a caller bug.
var ErrInvalidRequest = errors.New("invalid pagination request")

var validate = validator.New()

// Request holds the four inputs of the range calculation.
// CurrentPage is 1-based; anything below 1 means the list is not ready yet.
type Request struct {
	TotalCount   int `json:"total_count" validate:"gte=0"`
	PageSize     int `json:"page_size" validate:"gt=0"`
	CurrentPage  int `json:"current_page"`
	SiblingCount int `json:"sibling_count" validate:"gte=0"`
}

// TotalPages returns ceil(TotalCount / PageSize), or 0 for an invalid page size.
func (r Request) TotalPages() int {
	if r.PageSize <= 0 || r.TotalCount <= 0 {
		return 0
	}
	// quotient + remainder instead of (n+size-1)/size so huge totals cannot overflow
	pages := r.TotalCount / r.PageSize
	if r.TotalCount%r.PageSize != 0 {
		pages++
	}
	return pages
}

// Validate checks the static configuration. CurrentPage is deliberately not
// checked: out-of-range pages come from transient UI state and are tolerated.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be %s %s (got %v)", fe.Field(), tagOperator(fe.Tag()), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

func tagOperator(tag string) string {
	switch tag {
	case "gt":
		return ">"
	case "gte":
		return ">="
	default:
		return tag
	}
}
