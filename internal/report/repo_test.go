package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthPattern(t *testing.T) {
	assert.Equal(t, "2024-01-%", monthPattern(2024, 1))
	assert.Equal(t, "2024-10-%", monthPattern(2024, 10))
	assert.Equal(t, "0999-05-%", monthPattern(999, 5))
}

// The pattern's only wildcard is the trailing %, so LIKE against a
// YYYY-MM-DD date reduces to a prefix match on the year and month.
func TestMonthPatternMatchesOnlyThatMonth(t *testing.T) {
	prefix := strings.TrimSuffix(monthPattern(2024, 1), "%")
	assert.True(t, strings.HasPrefix("2024-01-31", prefix))
	assert.False(t, strings.HasPrefix("2024-11-05", prefix))
	assert.False(t, strings.HasPrefix("2023-01-05", prefix))
}
