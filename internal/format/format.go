// Package format holds the small presentation helpers the site uses around
// its lists: URL slugs, French long dates and euro prices.
package format

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidDate is returned when a CMS date cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// Slug builds the URL segment for a CMS document: the title folded to
// lowercase ASCII words joined by dashes, then the document id.
//
//	Slug("Beauté Naturelle à Paris", "doc456") // "beaute-naturelle-a-paris-doc456"
//
// An empty title still yields "-<documentID>" so the id stays recoverable.
func Slug(title, documentID string) string {
	folded := Fold(title)

	var b strings.Builder
	b.Grow(len(folded) + len(documentID) + 1)
	dash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	b.WriteByte('-')
	b.WriteString(documentID)
	return b.String()
}

// DocumentID recovers the id appended by Slug. It relies on ids never containing a dash.
func DocumentID(slug string) string {
	i := strings.LastIndexByte(slug, '-')
	if i < 0 {
		return slug
	}
	return slug[i+1:]
}

// Fold lowercases s and strips accents, for accent-insensitive matching.
func Fold(s string) string {
	folded, _, err := transform.String(stripMarks(), s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// stripMarks decomposes accented letters and drops the combining marks.
// A transformer is stateful, so each call gets its own chain.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// dateLayouts are the shapes the CMS uses for issue dates.
var dateLayouts = []string{time.DateOnly, time.RFC3339, time.RFC3339Nano}

// ParseDate parses a CMS issue date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FrenchDate renders a CMS date as "15 Janvier 2024".
func FrenchDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return FrenchDateOf(t), nil
}

// FrenchDateOf renders t as "<day> <Month> <year>" with a capitalised French month.
func FrenchDateOf(t time.Time) string {
	month := cases.Title(language.French).String(frenchMonths[t.Month()-1])
	return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
}

// Price renders an amount in euros the way the catalog shows it: "49,90€".
// Grouping separators are left out, matching the product cards.
func Price(euros float64) string {
	p := message.NewPrinter(language.French)
	return p.Sprint(number.Decimal(euros, number.Scale(2), number.NoSeparator())) + "€"
}
