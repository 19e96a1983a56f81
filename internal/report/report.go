// Package report renders count aggregations as aligned, sorted, optionally
// truncated text blocks, and composes the four per-dimension blocks into the
// full summary.
//
// The block format is a stable wire format consumed byte-for-byte by tests
// and downstream tooling:
//   - entries sorted by count descending, ties broken by key ascending
//   - the count column is right-aligned to the digit width of the summed
//     counts
//   - with a truncation limit, one "(+N more items)" line notes the rest
//   - a trailing "Total" line carries either the occurrence sum or the
//     distinct-key count
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"warnsum/internal/sortutil"
	"warnsum/internal/tally"
)

// Section is one labeled block of the composed report.
type Section struct {
	Label string
	Body  string
}

// Format renders one count table. topN of 0 shows every entry. When
// distinctTotal is set the Total line carries the number of distinct keys
// instead of the occurrence sum: warning-name tables want the occurrence
// total, file/directory/keyword tables want an at-a-glance item count.
// An empty table renders as the empty string.
func Format(counts tally.Counts, topN int, distinctTotal bool) string {
	if len(counts) == 0 {
		return ""
	}
	entries := sortutil.OrderedEntries(counts)

	sum := 0
	for _, e := range entries {
		sum += int(e.Count)
	}
	width := len(strconv.Itoa(sum))

	total := toCount(sum)
	if distinctTotal {
		total = toCount(len(entries))
	}

	shown := entries
	remaining := 0
	if topN > 0 && len(entries) > topN {
		shown = entries[:topN]
		remaining = len(entries) - topN
	}

	var b strings.Builder
	for _, e := range shown {
		fmt.Fprintf(&b, "%*d  %s\n", width, e.Count, e.Key)
	}
	if remaining > 0 {
		fmt.Fprintf(&b, "%s  (+%d more items)\n", strings.Repeat(" ", width), remaining)
	}
	fmt.Fprintf(&b, "%*d  Total", width, total)
	return b.String()
}

// Sections produces the four labeled blocks of a collection summary in their
// fixed order.
func Sections(c *tally.Collection, topN int) []Section {
	return []Section{
		{Label: "Warnings", Body: Format(c.Names, topN, false)},
		{Label: "Files", Body: Format(c.Files, topN, true)},
		{Label: "Directories", Body: Format(c.Directories, topN, true)},
		{Label: "Keywords", Body: Format(c.Keywords, topN, true)},
	}
}

// DeltaSections produces the four labeled blocks of a signed delta report,
// using the same layout and total asymmetry as the collection summary.
func DeltaSections(d tally.Delta, topN int) []Section {
	return []Section{
		{Label: "Warnings", Body: Format(d.Names, topN, false)},
		{Label: "Files", Body: Format(d.Files, topN, true)},
		{Label: "Directories", Body: Format(d.Directories, topN, true)},
		{Label: "Keywords", Body: Format(d.Keywords, topN, true)},
	}
}

// Render composes the full four-section summary, sections separated by one
// blank line. A section over an empty table renders as its bare label.
func Render(c *tally.Collection, topN int) string {
	return join(Sections(c, topN))
}

// RenderDelta composes the full four-section delta report.
func RenderDelta(d tally.Delta, topN int) string {
	return join(DeltaSections(d, topN))
}

func join(sections []Section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.Body == "" {
			parts = append(parts, s.Label)
			continue
		}
		parts = append(parts, s.Label+"\n"+s.Body)
	}
	return strings.Join(parts, "\n\n")
}

// toCount narrows a wide total into the int16 counter domain, saturating at
// the boundary instead of wrapping.
func toCount(n int) int16 {
	v, err := safecast.Conv[int16](n)
	if err != nil {
		if n > 0 {
			return math.MaxInt16
		}
		return math.MinInt16
	}
	return v
}
