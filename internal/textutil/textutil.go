// Package textutil normalizes raw build-log bytes before extraction.
// Compilers and CI systems emit a mix of line endings and occasionally
// non-UTF-8 bytes; the warning patterns are line anchored and expect LF.
package textutil

import "bytes"

// NormalizeUTF8LF converts CRLF and lone CR to LF and ensures the output is
// valid UTF-8 by replacing invalid byte sequences with the Unicode
// replacement character.
func NormalizeUTF8LF(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	b = bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
	return bytes.ToValidUTF8(b, []byte("�"))
}
