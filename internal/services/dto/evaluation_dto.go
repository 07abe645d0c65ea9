package dto

import "time"

// EvaluationResponse is the persisted oracle verdict returned to the caller.
type EvaluationResponse struct {
	ApplicationID       string    `json:"application_id"`
	JobID               string    `json:"job_id"`
	CandidateID         string    `json:"candidate_id"`
	Score               float64   `json:"score"`
	Verdict             string    `json:"verdict"`
	FitRange            string    `json:"fit_range"`
	AlignmentHighlights []string  `json:"alignment_highlights"`
	GapsConcerns        []string  `json:"gaps_concerns"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// RankedCandidate is one enriched row of a job's ranked candidate list.
type RankedCandidate struct {
	Rank          int    `json:"rank"`
	ApplicationID string `json:"application_id"`
	CandidateID   string `json:"candidate_id"`

	CandidateName     string   `json:"candidate_name,omitempty"`
	Headline          string   `json:"headline,omitempty"`
	Location          string   `json:"location,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	ApplicationStatus string   `json:"application_status,omitempty"`

	Score    float64   `json:"score"`
	FitRange string    `json:"fit_range"`
	Verdict  string    `json:"verdict,omitempty"`
	Updated  time.Time `json:"last_updated"`
}

type RankedCandidatesResponse struct {
	JobID   string            `json:"job_id"`
	Total   int               `json:"total"`
	Entries []RankedCandidate `json:"entries"`
}
