package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
)

func TestDevelopment(t *testing.T) {
	t.Setenv("GRIDPATH_DEBUG", "1")
	assert.True(t, config.Development())

	t.Setenv("GRIDPATH_DEBUG", "0")
	assert.False(t, config.Development())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GRIDPATH_DEBUG", "0")
	t.Setenv("GRIDPATH_BYTES_SIZE", "")
	t.Setenv("GRIDPATH_BYTES_PREFIX", "")

	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		BytesGridSize: config.DefaultBytesGridSize,
		BytesPrefix:   config.DefaultBytesPrefix,
	}, *c)
	assert.Equal(t, 71, c.Fields()["bytes_grid_size"])
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GRIDPATH_DEBUG", "yes")
	t.Setenv("GRIDPATH_BYTES_SIZE", "7")
	t.Setenv("GRIDPATH_BYTES_PREFIX", "0")

	c, err := config.Load()
	require.NoError(t, err)
	assert.True(t, c.Development)
	assert.Equal(t, 7, c.BytesGridSize)
	assert.Equal(t, 0, c.BytesPrefix)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"size not a number", "GRIDPATH_BYTES_SIZE", "big"},
		{"zero size", "GRIDPATH_BYTES_SIZE", "0"},
		{"negative prefix", "GRIDPATH_BYTES_PREFIX", "-3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GRIDPATH_BYTES_SIZE", "")
			t.Setenv("GRIDPATH_BYTES_PREFIX", "")
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			assert.ErrorContains(t, err, tc.key)
		})
	}
}
