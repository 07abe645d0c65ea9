package models

import "time"

type Interview struct {
	BaseModel
	JobID       string          `gorm:"index"`
	CandidateID string          `gorm:"index;not null"`
	RecruiterID string          `gorm:"index;not null"`
	Status      InterviewStatus `gorm:"type:varchar(20);default:'scheduled'"`
	ScheduledAt *time.Time
}
