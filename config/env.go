package config

import (
	"fmt"
	"os"
	"strconv"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// lookupInt reads an integer env variable, falling back to def when it is
// not set.
func lookupInt(name string, def int) (int, error) {
	str, ok := os.LookupEnv(name)
	if !ok {
		return def, nil
	}
	value, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", name, err)
	}
	return value, nil
}
