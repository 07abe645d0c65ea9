package dto

import "jobmatch_backend/internal/search"

// SearchCandidatesRequest carries the query-string parameters of a candidate
// search. Filter is the structured boolean expression, Query is free text.
type SearchCandidatesRequest struct {
	Query           string `form:"q"`
	Filter          string `form:"filter"`
	Location        string `form:"location"`
	ActivelyLooking *bool  `form:"actively_looking"`
	Limit           int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset          int    `form:"offset" binding:"omitempty,min=0"`
}

type CandidateSearchResult struct {
	CandidateID     string         `json:"candidate_id"`
	UserID          string         `json:"user_id"`
	Name            string         `json:"name"`
	Headline        string         `json:"headline,omitempty"`
	Location        string         `json:"location,omitempty"`
	Skills          []string       `json:"skills,omitempty"`
	ActivelyLooking bool           `json:"actively_looking"`
	Score           float64        `json:"score"`
	Matches         []search.Match `json:"matches,omitempty"`
}

type SearchCandidatesResponse struct {
	Query   string                  `json:"query"`
	Total   int                     `json:"total"`
	Results []CandidateSearchResult `json:"results"`
}
