// Package shared provides common utility functions used across multiple
// packages in the pomgen codebase.
package shared

import (
	"strings"
	"unicode"
)

// CamelCase converts a hyphen- or underscore-separated identifier to
// camelCase by upper-casing the character after each separator and
// dropping the separator ("group-id" becomes "groupId").
func CamelCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for _, r := range name {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FirstRest splits a path sequence into its primary entry and the
// remainder. An empty sequence yields an empty primary.
func FirstRest(paths []string) (string, []string) {
	if len(paths) == 0 {
		return "", nil
	}
	if len(paths) == 1 {
		return paths[0], nil
	}
	return paths[0], paths[1:]
}
