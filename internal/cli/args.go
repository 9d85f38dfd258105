package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// RequirePathArg validates that exactly one path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequirePathArg(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <path>

Usage: %s

Example:
  %s images/logo.png --root ./content`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// parseKeyValuePairs converts a slice of "key=value" strings into a map.
func parseKeyValuePairs(flag string, pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid argument %q for --%s: not in key=value format", pair, flag)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid argument %q for --%s: empty key", pair, flag)
		}

		result[key] = value
	}

	return result, nil
}

// splitValues splits a comma-separated list, dropping empty items.
func splitValues(s string) []string {
	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
