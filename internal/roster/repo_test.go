package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQueryPlaceholders(t *testing.T) {
	query, args := listQuery("", "")
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)

	query, args = listQuery("CS", "")
	assert.Contains(t, query, "WHERE department = $1")
	assert.Equal(t, []any{"CS"}, args)

	// section alone takes $1, not $2
	query, args = listQuery("", "A")
	assert.Contains(t, query, "WHERE section = $1")
	assert.Equal(t, []any{"A"}, args)

	query, args = listQuery("CS", "A")
	assert.Contains(t, query, "WHERE department = $1 AND section = $2")
	assert.Equal(t, []any{"CS", "A"}, args)
}
