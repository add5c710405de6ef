package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	value, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), value)

	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	value, _, _ = s.Get(ctx, "k")
	assert.Equal(t, []byte("v2"), value)

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := []byte("value")
	require.NoError(t, s.Set(ctx, "k", original))
	original[0] = 'X'

	stored, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), stored)

	stored[0] = 'Y'
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("value"), again)
}
