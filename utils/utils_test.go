package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBureauID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id, err := GenerateBureauID()
		require.NoError(t, err)
		require.Len(t, id, 7)

		n, err := strconv.Atoi(id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000000)
		assert.LessOrEqual(t, n, 9999999)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 450)
}
