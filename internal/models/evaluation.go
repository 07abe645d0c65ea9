package models

import (
	"time"

	"github.com/lib/pq"
)

// CandidateEvaluation is the persisted oracle verdict for one application.
// Exactly one row per application id; re-evaluation overwrites in place.
type CandidateEvaluation struct {
	BaseModel
	ApplicationID string   `gorm:"uniqueIndex;not null"`
	JobID         string   `gorm:"index;not null"`
	CandidateID   string   `gorm:"index;not null"`
	Score         float64  `gorm:"not null"` // 0..10
	Verdict       string   `gorm:"type:text"`
	FitRange      FitRange `gorm:"type:varchar(20);not null"`

	AlignmentHighlights pq.StringArray `gorm:"type:text[]"`
	GapsConcerns        pq.StringArray `gorm:"type:text[]"`

	GeneratedAt time.Time `gorm:"not null"`
}

// ApplicationRanking is one job-scoped dense rank position. The full row set
// for a job is replaced as a unit on every recompute; ranks are 1-based with
// no gaps or duplicates.
type ApplicationRanking struct {
	BaseModel
	JobID         string   `gorm:"index;not null"`
	ApplicationID string   `gorm:"index;not null"`
	CandidateID   string   `gorm:"not null"`
	Rank          int      `gorm:"not null"`
	Score         float64  `gorm:"not null"`
	FitRange      FitRange `gorm:"type:varchar(20);not null"`
	LastUpdated   time.Time
}
