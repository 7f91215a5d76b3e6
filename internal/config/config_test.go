package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvDefault(t *testing.T) {
	t.Setenv("TEST_ENV_STR", "value")
	require.Equal(t, "value", EnvDefault("TEST_ENV_STR", "def"))
	require.Equal(t, "def", EnvDefault("TEST_ENV_MISSING", "def"))
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "9090")
	require.Equal(t, 9090, EnvIntDefault("TEST_ENV_INT", 8080))

	t.Setenv("TEST_ENV_INT_BAD", "not-a-number")
	require.Equal(t, 8080, EnvIntDefault("TEST_ENV_INT_BAD", 8080))
	require.Equal(t, 8080, EnvIntDefault("TEST_ENV_INT_MISSING", 8080))
}

func TestEnvBoolDefault(t *testing.T) {
	t.Setenv("TEST_ENV_BOOL", "true")
	require.True(t, EnvBoolDefault("TEST_ENV_BOOL", false))

	t.Setenv("TEST_ENV_BOOL_BAD", "yes-please")
	require.False(t, EnvBoolDefault("TEST_ENV_BOOL_BAD", false))
	require.True(t, EnvBoolDefault("TEST_ENV_BOOL_MISSING", true))
}
