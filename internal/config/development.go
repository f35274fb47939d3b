package config

import "os"

func Development() bool {
	development, ok := os.LookupEnv("GRIDPATH_DEBUG")
	if !ok {
		return false
	}
	return development != "0"
}
