package ids

import "strings"

// NormalizeUnique lowercases IDs and removes empties and duplicates,
// preserving order.
func NormalizeUnique(ids []string) []string {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == "" || seen[idLower] {
			continue
		}
		seen[idLower] = true
		unique = append(unique, idLower)
	}
	return unique
}

// MatchPrefix finds the ID with the given prefix, case-insensitively.
// It reports whether a match was found and whether the prefix was
// ambiguous. An exact match wins over a longer ID sharing the prefix.
func MatchPrefix(ids []string, prefix string) (match string, found bool, ambiguous bool) {
	prefixLower := strings.ToLower(prefix)
	if prefixLower == "" {
		return "", false, false
	}

	for _, id := range ids {
		if id == prefixLower {
			return id, true, false
		}
		if strings.HasPrefix(id, prefixLower) {
			if found {
				return "", false, true
			}
			match = id
			found = true
		}
	}

	return match, found, false
}

// UniquePrefixLengths returns the shortest unique prefix length for each ID.
// IDs must already be normalized via NormalizeUnique.
func UniquePrefixLengths(ids []string) map[string]int {
	lengths := make(map[string]int, len(ids))
	for _, id := range ids {
		lengths[id] = uniquePrefixLength(id, ids)
	}
	return lengths
}

func uniquePrefixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		prefix := id[:length]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if strings.HasPrefix(other, prefix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}

	return len(id)
}
