package sortutil

import "sort"

// Entry pairs an aggregation key with its tally.
type Entry struct {
	Key   string
	Count int16
}

// OrderedEntries returns the entries of a count table ordered by count
// descending, ties broken by key ascending. The input map is not modified.
func OrderedEntries(counts map[string]int16) []Entry {
	out := make([]Entry, 0, len(counts))
	for k, v := range counts {
		out = append(out, Entry{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
