package search

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Match explains why one source contributed to a candidate's score. At most
// one match is recorded per source: the first qualifying term in query order.
type Match struct {
	Source  Source `json:"source"`
	Label   string `json:"label"`
	Term    string `json:"term"`
	Snippet string `json:"snippet"`
}

// Result is the scored outcome for one candidate document.
type Result struct {
	CandidateID string  `json:"candidate_id"`
	UserID      string  `json:"user_id"`
	Score       float64 `json:"score"`
	Matches     []Match `json:"matches,omitempty"`
}

const snippetRadius = 60

var quotedPhrasePattern = regexp.MustCompile(`"[^"]*"`)

// ExtractTerms pulls the scoring terms out of a free-text query: quoted
// phrases verbatim first, then remaining words longer than two characters.
// Boolean keywords (and/or/not) and parentheses are query structure, not
// terms. Terms are case-folded and deduplicated preserving first-seen order.
func ExtractTerms(query string) []string {
	query = strings.ToLower(query)

	var terms []string
	seen := make(map[string]bool)

	appendTerm := func(term string) {
		term = strings.TrimSpace(term)
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		terms = append(terms, term)
	}

	remainder := quotedPhrasePattern.ReplaceAllStringFunc(query, func(match string) string {
		appendTerm(strings.Trim(match, `"`))
		return " "
	})

	remainder = strings.NewReplacer("(", " ", ")", " ").Replace(remainder)

	for _, word := range strings.Fields(remainder) {
		if isBooleanKeyword(word) || len(word) <= 2 {
			continue
		}
		appendTerm(word)
	}

	return terms
}

func isBooleanKeyword(word string) bool {
	return word == "and" || word == "or" || word == "not"
}

// Rank scores every document against the query and returns results ordered
// by score descending. The sort is stable, so equal-score candidates keep
// their input order. A query that yields no terms (empty, or nothing but
// boolean keywords and sub-3-char tokens) returns every candidate with
// score 0 and no match entries; otherwise candidates with neither score nor
// matches are dropped.
func Rank(docs []*Document, query string) []Result {
	terms := ExtractTerms(query)

	if len(terms) == 0 {
		results := make([]Result, 0, len(docs))
		for _, doc := range docs {
			results = append(results, Result{CandidateID: doc.CandidateID, UserID: doc.UserID})
		}
		return results
	}

	var results []Result
	for _, doc := range docs {
		score, matches := ScoreDocument(doc, terms)
		if score > 0 || len(matches) > 0 {
			results = append(results, Result{
				CandidateID: doc.CandidateID,
				UserID:      doc.UserID,
				Score:       score,
				Matches:     matches,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// ScoreDocument computes weight(source) × occurrences(term, source) summed
// over every term and source, with one match explanation per matching source.
func ScoreDocument(doc *Document, terms []string) (float64, []Match) {
	score := 0.0
	var matches []Match

	for _, src := range sourceOrder {
		text, ok := doc.Sources[src]
		if !ok {
			continue
		}

		matched := false
		for _, term := range terms {
			occurrences := strings.Count(text, term)
			if occurrences == 0 {
				continue
			}

			score += Weight(src) * float64(occurrences)

			if !matched {
				matched = true
				matches = append(matches, Match{
					Source:  src,
					Label:   Label(src),
					Term:    term,
					Snippet: snippet(text, term),
				})
			}
		}
	}

	return score, matches
}

// snippet returns the first occurrence of term padded with up to
// snippetRadius characters of context on each side, ellipsis-marked when
// truncated at a string boundary.
func snippet(text, term string) string {
	idx := strings.Index(text, term)
	if idx < 0 {
		return ""
	}

	start := idx - snippetRadius
	if start < 0 {
		start = 0
	}
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}

	end := idx + len(term) + snippetRadius
	if end > len(text) {
		end = len(text)
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}

	prefix, suffix := "", ""
	if start > 0 {
		prefix = "..."
	}
	if end < len(text) {
		suffix = "..."
	}

	return prefix + text[start:end] + suffix
}
