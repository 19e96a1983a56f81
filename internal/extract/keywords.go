package extract

import "regexp"

// reIdent matches identifier-shaped tokens: a letter or underscore followed
// by at least one more word character. Single-character names are never
// interesting enough to tally.
var reIdent = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]+`)

// Keywords tokenizes a source excerpt into identifier tokens, keeping only
// those of at least minLen characters and not present in ignored. Order is
// preserved and duplicates within one excerpt are kept.
func Keywords(excerpt string, minLen int, ignored map[string]struct{}) []string {
	var out []string
	for _, tok := range reIdent.FindAllString(excerpt, -1) {
		if len(tok) < minLen {
			continue
		}
		if _, skip := ignored[tok]; skip {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// IgnoreSet builds the exact-match drop list from a flag/config slice,
// skipping empty strings.
func IgnoreSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w != "" {
			m[w] = struct{}{}
		}
	}
	return m
}
