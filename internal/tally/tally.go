// Package tally aggregates extracted warnings into per-dimension count
// tables and computes signed deltas between two such aggregations.
//
// Counters are deliberately int16: practical build logs never approach the
// range, and the narrow width is a documented design constraint rather than
// an incidental one. Totals derived from these counters are narrowed through
// checked conversion and saturate instead of wrapping.
package tally

import (
	"path/filepath"
	"strings"

	"warnsum/internal/extract"
)

// Counts is one aggregation dimension: key to signed 16-bit tally.
type Counts map[string]int16

// Collection is the complete summary of one log: every extracted warning in
// order of appearance, plus the four count aggregations over them. A
// Collection is immutable once built.
type Collection struct {
	Warnings    []extract.Warning
	Names       Counts
	Files       Counts
	Directories Counts
	Keywords    Counts
}

// Collect extracts warnings from raw log text and builds their aggregations
// in one step. Malformed input yields an empty collection.
func Collect(content string, opts extract.Options) *Collection {
	return New(extract.Warnings(content, opts))
}

// New builds a Collection over an already-extracted warning sequence.
func New(warnings []extract.Warning) *Collection {
	return &Collection{
		Warnings:    warnings,
		Names:       ByName(warnings),
		Files:       ByFile(warnings),
		Directories: ByDirectory(warnings),
		Keywords:    ByKeyword(warnings),
	}
}

// countBy tallies one record key per warning.
func countBy(warnings []extract.Warning, key func(extract.Warning) string) Counts {
	out := make(Counts, len(warnings))
	for _, w := range warnings {
		out[key(w)]++
	}
	return out
}

// ByName tallies warnings per flag name.
func ByName(warnings []extract.Warning) Counts {
	return countBy(warnings, func(w extract.Warning) string { return w.Name })
}

// ByFile tallies warnings per originating file.
func ByFile(warnings []extract.Warning) Counts {
	return countBy(warnings, func(w extract.Warning) string { return w.File })
}

// ByDirectory tallies warnings per containing directory. A file with no
// parent component counts under the file path itself.
func ByDirectory(warnings []extract.Warning) Counts {
	return countBy(warnings, func(w extract.Warning) string { return dirKey(w.File) })
}

// ByKeyword tallies every keyword occurrence across all warnings. Duplicates
// within and across warnings all count.
func ByKeyword(warnings []extract.Warning) Counts {
	out := make(Counts)
	for _, w := range warnings {
		for _, kw := range w.Keywords {
			out[kw]++
		}
	}
	return out
}

func dirKey(file string) string {
	if !strings.ContainsAny(file, `/\`) {
		return file
	}
	return filepath.Dir(file)
}
