package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-01-10 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-01-10T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Hour())

	_, err = ParseDate("10/01/2024")
	assert.Error(t, err)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("HOTEL_TEST_STR", "  value ")
	t.Setenv("HOTEL_TEST_BOOL", "false")
	t.Setenv("HOTEL_TEST_BAD_BOOL", "nope")

	assert.Equal(t, "value", EnvOrDefault("HOTEL_TEST_STR", "def"))
	assert.Equal(t, "def", EnvOrDefault("HOTEL_TEST_UNSET", "def"))
	assert.False(t, EnvBool("HOTEL_TEST_BOOL", true))
	assert.True(t, EnvBool("HOTEL_TEST_BAD_BOOL", true))
	assert.True(t, EnvBool("HOTEL_TEST_UNSET", true))
}
