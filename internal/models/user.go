package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null"`
	Name         string     `gorm:"not null"`
	Role         UserRole   `gorm:"type:varchar(20);not null"`
	Status       UserStatus `gorm:"type:varchar(20);default:'pending'"`
	LastActiveAt *time.Time

	// Relations
	CandidateProfile *CandidateProfile `gorm:"foreignKey:UserID"`
	RecruiterProfile *RecruiterProfile `gorm:"foreignKey:UserID"`
}
