package tally

// Delta is the signed difference between two collections' aggregations.
// Positive values mean the left-hand collection has more occurrences of that
// key; keys whose net delta is zero are absent entirely.
type Delta struct {
	Names       Counts
	Files       Counts
	Directories Counts
	Keywords    Counts
}

// Diff computes self minus other across all four dimensions.
func (c *Collection) Diff(other *Collection) Delta {
	return Delta{
		Names:       DiffCounts(c.Names, other.Names),
		Files:       DiffCounts(c.Files, other.Files),
		Directories: DiffCounts(c.Directories, other.Directories),
		Keywords:    DiffCounts(c.Keywords, other.Keywords),
	}
}

// DiffCounts computes lhs minus rhs over one dimension: start from a copy of
// lhs, subtract every rhs count, then drop keys that net out to zero. Keys
// present only in rhs surface with negative values.
func DiffCounts(lhs, rhs Counts) Counts {
	out := make(Counts, len(lhs))
	for k, v := range lhs {
		out[k] = v
	}
	for k, v := range rhs {
		out[k] -= v
	}
	for k, v := range out {
		if v == 0 {
			delete(out, k)
		}
	}
	return out
}
