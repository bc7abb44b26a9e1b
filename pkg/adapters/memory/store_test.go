package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notoo/pkg/adapters/memory"
	"github.com/aretw0/notoo/pkg/core"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Initialize(ctx))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, core.ErrNotFound)

	value := []byte("v1")
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got), "stored value must not alias the caller's slice")

	require.NoError(t, s.Set(ctx, "a", nil))
	keys, _ := s.Keys(ctx)
	assert.Equal(t, []string{"a", "k"}, keys)
	assert.Equal(t, map[string]int{"keys": 2}, s.State())

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))
	keys, _ = s.Keys(ctx)
	assert.Equal(t, []string{"a"}, keys)
}
