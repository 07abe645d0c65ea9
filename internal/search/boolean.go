package search

import "strings"

// MatchesBoolean evaluates a structured boolean expression against a
// candidate's searchable text. The expression is split on " and " into
// required clauses, each clause is split on " or " into alternatives, and an
// alternative prefixed with "not " requires its remainder to be absent.
// Parentheses only group alternatives and carry no extra semantics.
//
// An empty expression matches everything.
func MatchesBoolean(searchable, expr string) bool {
	searchable = strings.ToLower(searchable)
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return true
	}

	for _, clause := range strings.Split(expr, " and ") {
		if !clauseHolds(searchable, clause) {
			return false
		}
	}
	return true
}

func clauseHolds(searchable, clause string) bool {
	clause = strings.Trim(clause, " ()")
	if clause == "" {
		return true
	}

	for _, alt := range strings.Split(clause, " or ") {
		alt = strings.Trim(alt, " ()")
		if alt == "" {
			continue
		}

		if rest, negated := strings.CutPrefix(alt, "not "); negated {
			if !strings.Contains(searchable, strings.TrimSpace(rest)) {
				return true
			}
			continue
		}

		if strings.Contains(searchable, alt) {
			return true
		}
	}
	return false
}
