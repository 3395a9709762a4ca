package extract

import "regexp"

// Rule binds one semantic field to its ordered pattern list. Patterns are
// tried in order over the full document text; the first match populates
// the field and the rest are skipped. Patterns deliberately over-match
// (broad keywords-then-digits shapes) because phrasing varies by year;
// precision comes from downstream range gating, not tighter patterns.
type Rule struct {
	Field    string
	Patterns []*regexp.Regexp
}

// RuleSet is the ordered pattern table for one document section.
type RuleSet []Rule

// compile builds case-insensitive patterns that may span line breaks.
func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(`(?is)`+e))
	}
	return out
}

// FirstMatch returns the capture groups of the first pattern that matches
// text, in pattern order.
func FirstMatch(text string, patterns []*regexp.Regexp) ([]string, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1:], true
		}
	}
	return nil, false
}

// Match runs every rule against text and returns the first capture per
// field. Fields whose patterns never matched are absent from the result.
func (rs RuleSet) Match(text string) map[string]string {
	out := make(map[string]string, len(rs))
	for _, r := range rs {
		if caps, ok := FirstMatch(text, r.Patterns); ok && len(caps) > 0 {
			out[r.Field] = caps[0]
		}
	}
	return out
}
