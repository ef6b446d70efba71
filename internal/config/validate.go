package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidThemes are the accepted values for theme.
var ValidThemes = []string{"default", "nord", "none"}

// validateEnum checks that value (if non-empty) is one of the allowed values.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// validateHost checks that default_host is a bare host name.
func validateHost(host string) error {
	if host == "" || strings.ContainsAny(host, "/\\: \t") || host == "." || host == ".." {
		return fmt.Errorf("invalid default_host %q: must be a bare host name like \"github.com\"", host)
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
