// Package resolver matches partial context names against the names kubectl
// reports. It backs the "did you mean" hint printed when a switch target
// does not exist; it never changes which context an operation acts on.
package resolver

import (
	"sort"
	"strings"
)

// Suggest returns the candidates partial is a prefix of, sorted. Matching
// is case-insensitive so a typo in casing still surfaces the real name. An
// empty partial suggests nothing.
func Suggest(partial string, candidates []string) []string {
	if partial == "" {
		return nil
	}

	var suggestions []string
	prefix := strings.ToLower(partial)

	for _, name := range candidates {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			suggestions = append(suggestions, name)
		}
	}

	sort.Strings(suggestions)
	return suggestions
}

// Known reports whether name exactly matches one of the candidates.
// Context names are case-sensitive, so this is too.
func Known(name string, candidates []string) bool {
	for _, candidate := range candidates {
		if candidate == name {
			return true
		}
	}

	return false
}
