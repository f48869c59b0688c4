// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagerange parses human-entered page selections like "1-5" or
// "3" into the half-open interval the conversion engine expects.
// Implements: prd002-page-selection (R1-R3);
//
//	docs/ARCHITECTURE § Conversion.
package pagerange

import (
	"fmt"
	"strconv"
	"strings"
)

// Range selects the pages of a document to convert.
//
// The indexing convention is mixed and deliberately preserved as an
// external contract: Start is a zero-based page index, End is a
// one-based exclusive upper bound. "1-5" therefore parses to
// {Start: 0, End: 5} and converts pages 1 through 5 inclusive.
// End is meaningful only when Bounded is true; an unbounded range runs
// through the final page.
type Range struct {
	Start   int
	End     int
	Bounded bool
}

// Whole reports whether the range selects the entire document.
func (r Range) Whole() bool {
	return r.Start == 0 && !r.Bounded
}

// String renders the range for log lines, back in one-based terms.
func (r Range) String() string {
	switch {
	case r.Whole():
		return "all pages"
	case !r.Bounded:
		return fmt.Sprintf("pages %d-end", r.Start+1)
	case r.End-r.Start == 1:
		return fmt.Sprintf("page %d", r.End)
	default:
		return fmt.Sprintf("pages %d-%d", r.Start+1, r.End)
	}
}

// Parse converts a range string into a Range. Empty or whitespace-only
// text selects the whole document. "a-b" splits once on the first dash:
// the left side becomes max(a-1, 0) and the right side is taken as the
// exclusive end verbatim. A bare "n" selects that single page.
//
// Malformed text ("abc", "5-", "-3") also selects the whole document;
// the parser never fails its caller. The returned bool is advisory:
// false means the text was not understood, so front-ends that want to
// warn the operator can, while every other caller ignores it.
func Parse(text string) (Range, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Range{}, true
	}

	if i := strings.Index(text, "-"); i >= 0 {
		start, err := strconv.Atoi(strings.TrimSpace(text[:i]))
		if err != nil {
			return Range{}, false
		}
		end, err := strconv.Atoi(strings.TrimSpace(text[i+1:]))
		if err != nil {
			return Range{}, false
		}
		return Range{Start: max(start-1, 0), End: end, Bounded: true}, true
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return Range{}, false
	}
	start := max(n-1, 0)
	return Range{Start: start, End: start + 1, Bounded: true}, true
}
