package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDUniqueness(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := NewID()
		require.NoError(t, err)
		assert.False(t, ids[id], "ID should be unique: %s", id)
		ids[id] = true
	}
}

func TestNewIDFormat(t *testing.T) {
	id, err := NewID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "post-"))
	assert.True(t, ValidID(id))
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("post-V1StGXR8_Z5jdHi6B-myT"))
	assert.False(t, ValidID("post-"))
	assert.False(t, ValidID("blog-abc"))
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("abc"))
}
