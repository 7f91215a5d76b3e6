package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCartToggleRoundTrip(t *testing.T) {
	cart := &CartStore{KV: newTestKV(t)}

	require.NoError(t, cart.Toggle("7"))
	require.True(t, cart.Contains("7"))
	require.Equal(t, []string{"7"}, cart.IDs())

	require.NoError(t, cart.Toggle("7"))
	require.False(t, cart.Contains("7"))
	require.Empty(t, cart.IDs())
}

func TestCartKeepsInsertionOrder(t *testing.T) {
	cart := &CartStore{KV: newTestKV(t)}

	require.NoError(t, cart.Toggle("3"))
	require.NoError(t, cart.Toggle("1"))
	require.NoError(t, cart.Toggle("2"))
	require.Equal(t, []string{"3", "1", "2"}, cart.IDs())

	require.NoError(t, cart.Toggle("1"))
	require.Equal(t, []string{"3", "2"}, cart.IDs())
}

func TestCartEmptyIsNotNil(t *testing.T) {
	cart := &CartStore{KV: newTestKV(t)}
	require.NotNil(t, cart.IDs())
	require.False(t, cart.Contains("1"))
}
