package facts

import (
	"regexp"
	"strings"
)

var (
	spaceRuns   = regexp.MustCompile(` +`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

// Normalize prepares raw infobox text for the anchor-based field
// regexes: non-printable and non-ASCII runes become spaces, runs of
// spaces collapse to one space and runs of newlines to one newline.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteRune(r)
		case r >= 32 && r < 127:
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	cleaned := spaceRuns.ReplaceAllString(b.String(), " ")
	return newlineRuns.ReplaceAllString(cleaned, "\n")
}
