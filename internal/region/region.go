// Package region parses samtools-style region strings like
// "chr1:2,001-2,100" for command line use.
package region

import (
	"fmt"
	"strconv"
	"strings"
)

// Region is a span on a named contig. Start and End are 1-based and
// inclusive. Both zero means the whole contig.
type Region struct {
	// Contig is the contig name, eg "chr1"
	Contig string

	// Start of the span (1-based, inclusive)
	Start int

	// End of the span (1-based, inclusive)
	End int
}

// Parse reads "name", "name:start" or "name:start-end". Commas in the
// coordinates are ignored. The split is on the last colon so contig
// names that contain colons still parse.
func Parse(s string) (Region, error) {
	if s == "" {
		return Region{}, fmt.Errorf("empty region")
	}

	colon := strings.LastIndex(s, ":")
	if colon < 0 {
		return Region{Contig: s}, nil
	}
	contig := s[:colon]
	if contig == "" {
		return Region{}, fmt.Errorf("no contig name in region %q", s)
	}

	span := strings.ReplaceAll(s[colon+1:], ",", "")
	startStr, endStr, ranged := strings.Cut(span, "-")

	start, err := strconv.Atoi(startStr)
	if err != nil {
		return Region{}, fmt.Errorf("bad start in region %q: %v", s, err)
	}
	end := start
	if ranged {
		if end, err = strconv.Atoi(endStr); err != nil {
			return Region{}, fmt.Errorf("bad end in region %q: %v", s, err)
		}
	}
	if start < 1 || end < start {
		return Region{}, fmt.Errorf("bad span in region %q", s)
	}

	return Region{Contig: contig, Start: start, End: end}, nil
}

// Span converts r to a 0-based half-open range over a contig of the
// given length
func (r Region) Span(length int) (start, end int) {
	if r.Start == 0 && r.End == 0 {
		return 0, length
	}
	return r.Start - 1, r.End
}

// String renders r back in "name:start-end" form
func (r Region) String() string {
	if r.Start == 0 && r.End == 0 {
		return r.Contig
	}
	return fmt.Sprintf("%s:%d-%d", r.Contig, r.Start, r.End)
}
