package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	DefaultBytesGridSize = 71
	DefaultBytesPrefix   = 1024
)

// BytesGridSize is the side length of the square byte-fall grid.
func BytesGridSize() (int, error) {
	return positiveInt("GRIDPATH_BYTES_SIZE", DefaultBytesGridSize, false)
}

// BytesPrefix is how many obstacles the distance question applies.
func BytesPrefix() (int, error) {
	return positiveInt("GRIDPATH_BYTES_PREFIX", DefaultBytesPrefix, true)
}

func positiveInt(key string, def int, allowZero bool) (int, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return def, nil
	}

	n, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	if n < 0 || (n == 0 && !allowZero) {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}

	return n, nil
}
