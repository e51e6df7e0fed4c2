package ident

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratePrefixAndShape(t *testing.T) {
	id, err := Generate("usr")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id, "usr-"))
	require.Len(t, strings.TrimPrefix(id, "usr-"), 21)
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id, err := Generate("slot")
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
