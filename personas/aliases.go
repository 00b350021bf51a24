package personas

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Resolve normalizes a caller-supplied persona identifier to a canonical
// catalog key. Empty input resolves to the empty string. Anything else is
// trimmed, lowercased and looked up in the alias table; an identifier with
// no alias entry is returned as-is, so a canonical key resolves to itself.
//
// Resolve is total and never consults the registry: an unknown identifier
// comes back unchanged, and it is the caller's job to membership-check the
// result before using it.
func Resolve(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return ""
	}
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return key
}

// ClosestKey suggests the catalog key that best matches an identifier that
// failed to resolve, for use in rejection messages.
func ClosestKey(raw string, keys []string) (string, bool) {
	if raw == "" {
		return "", false
	}
	ranks := fuzzy.RankFindFold(raw, keys)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}
