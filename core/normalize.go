// Place for pure domain logic that doesn't depend on Gin or Mongo.
package core

import "strings"

// NormalizeName trims surrounding whitespace and upper-cases the first
// letter so stored display names are consistent.
func NormalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
