package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstMatch(t *testing.T) {
	patterns := compile(
		`number of applicants.*?(\d[\d,]*)`,
		`applicants.*?(\d[\d,]*)`,
	)

	t.Run("earlier pattern wins", func(t *testing.T) {
		caps, ok := FirstMatch("Applicants 999. Number of applicants: 12,345", patterns)
		require.True(t, ok)
		assert.Equal(t, "12,345", caps[0])
	})

	t.Run("case insensitive across lines", func(t *testing.T) {
		caps, ok := FirstMatch("NUMBER OF\nAPPLICANTS\n12,345", patterns)
		require.True(t, ok)
		assert.Equal(t, "12,345", caps[0])
	})

	t.Run("no pattern matches", func(t *testing.T) {
		_, ok := FirstMatch("nothing numeric here", patterns)
		assert.False(t, ok)
	})
}

func TestRuleSetMatch(t *testing.T) {
	rs := RuleSet{
		{Field: "applied", Patterns: compile(`applied.*?(\d[\d,]*)`)},
		{Field: "admitted", Patterns: compile(`admitted.*?(\d[\d,]*)`)},
	}
	got := rs.Match("Total applied: 9,000")
	assert.Equal(t, "9,000", got["applied"])
	_, present := got["admitted"]
	assert.False(t, present, "unmatched fields must be absent, not empty")
}
