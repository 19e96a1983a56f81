// Package extract locates compiler warnings in raw build-log text and turns
// them into structured records.
//
// Two diagnostic dialects are recognised:
//   - diagnostic-first (gcc/clang): "file:line:col: warning: ... [-Wname]"
//     optionally followed by a quoted source line and a caret marker line.
//   - excerpt-first (gfortran): "file:line:col:" on its own line, then an
//     optional blank line, an optional quoted source line plus marker line,
//     and finally a "Warning: ... [-Wname]" line.
//
// When a diagnostic carries both excerpt shapes, the trailing (gcc-style)
// excerpt is the keyword source. Matching is line oriented: one small
// pattern per concern instead of a single monolithic expression, so the
// dialect precedence stays explicit.
package extract

import (
	"os"
	"regexp"
	"strings"
)

// Warning is one matched compiler diagnostic. Records are immutable once
// created and appear in the order they occur in the log.
type Warning struct {
	Name     string   // flag identifier with the "-W" prefix stripped
	File     string   // path as found, relativized against the working dir
	Keywords []string // excerpt tokens, in order, duplicates preserved
}

// Options controls extraction.
type Options struct {
	KeywordMinLen int                 // minimum keyword length to keep
	Ignored       map[string]struct{} // exact-match keyword drop list
	WorkDir       string              // prefix stripped from matched file paths
}

var (
	// reDiagHead matches the "file:line:col:" prefix of a diagnostic. The
	// file group is lazy so the first line:col pair wins.
	reDiagHead = regexp.MustCompile(`^(?P<file>.+?):(?P<line>\d+):(?P<col>\d+):(?P<rest>.*)$`)

	// reWarnTail matches the warning marker and the mandatory bracketed
	// flag. Case-insensitive: gcc prints "warning:", gfortran "Warning:".
	reWarnTail = regexp.MustCompile(`(?i)^\s*warning:.*\[-W(?P<flag>[^\]\s]+)\]\s*$`)

	// reExcerptLine matches a numbered source line, e.g. "  235 |  code".
	reExcerptLine = regexp.MustCompile(`^\s*\d+\s*\|(?P<code>.*)$`)

	// reMarkerLine matches the column-marker line under an excerpt:
	// "      |    ^~~~" (gcc) or "      |        1" (gfortran).
	reMarkerLine = regexp.MustCompile(`^\s*\|(?P<marks>[\s^~0-9]*)$`)
)

// Warnings scans content and returns every matched diagnostic in order of
// appearance. Repeated diagnostics produce repeated records; input with no
// diagnostics yields an empty slice, never an error.
func Warnings(content string, opts Options) []Warning {
	lines := strings.Split(content, "\n")
	out := make([]Warning, 0)

	for i := 0; i < len(lines); i++ {
		file, rest, ok := diagHead(lines[i])
		if !ok {
			continue
		}

		// Diagnostic-first dialect: the warning marker shares the head line.
		if flag, ok := warnTail(rest); ok {
			excerpt, skip := trailingExcerpt(lines, i+1)
			out = append(out, newWarning(flag, file, excerpt, opts))
			i += skip
			continue
		}

		// Excerpt-first dialect: a bare head line, then (optionally) a blank
		// line and an excerpt block, then the warning marker line.
		if strings.TrimSpace(rest) != "" {
			continue
		}
		j := i + 1
		if j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}
		excerpt := ""
		if code, ok := leadingExcerpt(lines, j); ok {
			excerpt = code
			j += 2
		}
		if j < len(lines) {
			if flag, ok := warnTail(lines[j]); ok {
				// Trailing excerpt wins over the leading one when both are
				// present.
				if code, skip := trailingExcerpt(lines, j+1); skip > 0 {
					excerpt = code
					j += skip
				}
				out = append(out, newWarning(flag, file, excerpt, opts))
				i = j
			}
		}
	}
	return out
}

// diagHead parses "file:line:col:<rest>" from a single line.
func diagHead(line string) (file, rest string, ok bool) {
	m := reDiagHead.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[reDiagHead.SubexpIndex("file")], m[reDiagHead.SubexpIndex("rest")], true
}

// warnTail parses the warning marker plus bracketed flag from the remainder
// of a head line (gcc) or from a standalone line (gfortran).
func warnTail(s string) (flag string, ok bool) {
	m := reWarnTail.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[reWarnTail.SubexpIndex("flag")], true
}

// trailingExcerpt recognises the gcc-style excerpt block that follows a
// warning line: a numbered source line plus a marker line. It returns the
// quoted code and how many lines the block consumed.
func trailingExcerpt(lines []string, at int) (code string, skip int) {
	if at+1 >= len(lines) {
		return "", 0
	}
	m := reExcerptLine.FindStringSubmatch(lines[at])
	if m == nil || !markerLine(lines[at+1]) {
		return "", 0
	}
	return m[reExcerptLine.SubexpIndex("code")], 2
}

// leadingExcerpt recognises the gfortran-style excerpt block that precedes
// the warning marker line.
func leadingExcerpt(lines []string, at int) (code string, ok bool) {
	if at+1 >= len(lines) {
		return "", false
	}
	m := reExcerptLine.FindStringSubmatch(lines[at])
	if m == nil || !markerLine(lines[at+1]) {
		return "", false
	}
	return m[reExcerptLine.SubexpIndex("code")], true
}

func markerLine(line string) bool {
	m := reMarkerLine.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	// The marker column must carry at least one mark; a lone "|" is not a
	// marker line.
	return strings.TrimSpace(m[reMarkerLine.SubexpIndex("marks")]) != ""
}

func newWarning(flag, file, excerpt string, opts Options) Warning {
	w := Warning{
		Name: flag,
		File: relativize(file, opts.WorkDir),
	}
	if excerpt != "" {
		w.Keywords = Keywords(excerpt, opts.KeywordMinLen, opts.Ignored)
	}
	return w
}

// relativize strips workDir from file when it is a path prefix; any other
// path is kept exactly as found in the log.
func relativize(file, workDir string) string {
	if workDir == "" {
		return file
	}
	prefix := workDir
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	if strings.HasPrefix(file, prefix) {
		return file[len(prefix):]
	}
	return file
}
