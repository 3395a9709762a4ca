package ingest

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reBrokenSep  = regexp.MustCompile(`(\d) +,`) // "12 ,345" renders of "12,345"
)

// stripAccents decomposes, drops combining marks, recomposes. Keeps the
// keyword scans byte-predictable against accented source text.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize collapses noisy whitespace and repairs common extraction
// artifacts. Conservative: keeps line breaks, collapses runs of blank
// lines into a single blank line, and rejoins thousands separators that
// were split off their digits. It never merges digit runs across spaces;
// that would fuse adjacent table columns.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reBrokenSep.ReplaceAllString(s, "$1,")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
