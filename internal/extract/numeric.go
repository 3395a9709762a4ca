package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reSeparators = regexp.MustCompile(`[,\s]`)
	reDigitRun   = regexp.MustCompile(`\d+`)
)

// ParseCount extracts a non-negative integer from a raw text token,
// tolerating thousands separators and embedded whitespace. The second
// return is false when the token carries no digits.
func ParseCount(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	cleaned := reSeparators.ReplaceAllString(text, "")
	run := reDigitRun.FindString(cleaned)
	if run == "" {
		return 0, false
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		// digit run longer than an int; treat as malformed
		return 0, false
	}
	return n, true
}

// ParseDecimal extracts a float from a raw text token, stripping percent
// signs and thousands separators.
func ParseDecimal(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "%", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParsePercentage extracts a fraction in [0,1] from a raw token. Source
// values appear both as "45" (meaning 45%) and as "0.45"; anything above 1
// is divided by 100, anything at or below 1 passes through. A genuine raw
// percentage below 1% is therefore misread as an already-normalized
// fraction; accepted limitation.
func ParsePercentage(text string) (float64, bool) {
	f, ok := ParseDecimal(text)
	if !ok {
		return 0, false
	}
	if f > 1 {
		return f / 100, true
	}
	return f, true
}
