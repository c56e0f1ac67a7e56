// Package normalize canonicalizes engine-specific text layout artifacts so
// extracted text is comparable across backends.
package normalize

import "strings"

// ContinuationMarker is emitted by some engines to mark a word continuing
// across a line break without an actual newline in the output.
const ContinuationMarker = "\ufeff"

// NewlineAfterContinuation inserts an explicit newline immediately after
// each continuation marker, keeping the marker itself in place, so
// line-based comparison tools see consistent line boundaries. Markers
// already followed by a newline are left alone, which makes the function
// idempotent.
func NewlineAfterContinuation(text string) string {
	if !strings.Contains(text, ContinuationMarker) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + strings.Count(text, ContinuationMarker))

	rest := text
	for {
		i := strings.Index(rest, ContinuationMarker)
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := i + len(ContinuationMarker)
		b.WriteString(rest[:end])
		if !strings.HasPrefix(rest[end:], "\n") {
			b.WriteByte('\n')
		}
		rest = rest[end:]
	}
}

// LineEndings rewrites Windows and legacy Mac line endings to plain
// newlines.
func LineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
