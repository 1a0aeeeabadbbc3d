package util

import (
	"os"
	"strings"
)

// GetEnvironmentVariables returns the process environment as a name to value
// map, so callers can probe optional MARG_ settings without repeated Getenv
func GetEnvironmentVariables() map[string]string {
	variables := map[string]string{}

	for _, entry := range os.Environ() {
		name, value, _ := strings.Cut(entry, "=")
		variables[name] = value
	}

	return variables
}
