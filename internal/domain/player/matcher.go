package player

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultMatchThreshold is the minimum fuzzy score accepted when the
// caller does not tune the matcher.
const DefaultMatchThreshold = 80

// Match decides whether searchTerm resolves to candidateName and returns
// the confidence score. Strategies apply in order, first success wins:
// substring containment, partial ratio, token set ratio, then a shared
// first-name fallback at a fixed score of 85. On no match the score of
// the last strategy tried is returned. Empty input never matches.
func Match(searchTerm, candidateName string, threshold int) (bool, int) {
	if searchTerm == "" || candidateName == "" {
		return false, 0
	}
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}

	term := strings.ToLower(searchTerm)
	name := strings.ToLower(candidateName)

	if strings.Contains(name, term) {
		return true, 100
	}

	score := fuzzy.PartialRatio(term, name)
	if score >= threshold {
		return true, score
	}

	score = fuzzy.TokenSetRatio(term, name)
	if score >= threshold {
		return true, score
	}

	// Shared first name, e.g. "Mike Trout" vs "Mike Troutman".
	termTokens := strings.Fields(term)
	nameTokens := strings.Fields(name)
	if len(termTokens) > 1 && len(nameTokens) > 1 && termTokens[0] == nameTokens[0] {
		return true, 85
	}

	return false, score
}
