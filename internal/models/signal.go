package models

import "time"

// CandidateSignal is the single upserted behavioral snapshot for a candidate.
// Unique by candidate id; every recomputation overwrites all metric fields.
type CandidateSignal struct {
	BaseModel
	CandidateID string `gorm:"uniqueIndex;not null"`

	ProfileCompletionPercent int     `gorm:"default:0"`
	MessageReplyRate         float64 `gorm:"default:0"` // percent
	AvgResponseTimeHours     float64 `gorm:"default:0"`
	InterviewCompletionRate  float64 `gorm:"default:0"` // percent
	VideoViewCount           int64   `gorm:"default:0"`
	ProfileViewCount         int64   `gorm:"default:0"`
	SwipeRightCount          int64   `gorm:"default:0"`

	ResponsivenessScore Responsiveness `gorm:"type:varchar(10);default:'unknown'"`
	LastActive          time.Time
}

// RecruiterSignal is the recruiter-side snapshot, keyed by company id.
type RecruiterSignal struct {
	BaseModel
	CompanyID string `gorm:"uniqueIndex;not null"`

	ProfileCompletionPercent int     `gorm:"default:0"`
	MessageReplyRate         float64 `gorm:"default:0"`
	AvgResponseTimeHours     float64 `gorm:"default:0"`
	InterviewCompletionRate  float64 `gorm:"default:0"`
	VideoViewCount           int64   `gorm:"default:0"`
	ProfileViewCount         int64   `gorm:"default:0"`
	SwipeRightCount          int64   `gorm:"default:0"`

	AvgPipelineMoveDays float64 `gorm:"default:0"`
	ActiveConversations int64   `gorm:"default:0"`

	ResponsivenessScore Responsiveness `gorm:"type:varchar(10);default:'unknown'"`
	LastActive          time.Time
}
