package models

import "github.com/lib/pq"

type Job struct {
	BaseModel
	CompanyID    string         `gorm:"index;not null"`
	RecruiterID  string         `gorm:"index"`
	Title        string         `gorm:"not null"`
	Description  string         `gorm:"type:text"`
	Requirements pq.StringArray `gorm:"type:text[]"`
	Skills       pq.StringArray `gorm:"type:text[]"`
	Location     string
	SalaryMin    float64
	SalaryMax    float64
	Status       JobStatus `gorm:"type:varchar(20);default:'draft'"`
	Views        int       `gorm:"default:0"`
}
