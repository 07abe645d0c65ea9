package models

type Application struct {
	BaseModel
	JobID       string            `gorm:"index:idx_app_job_candidate,unique;not null"`
	CandidateID string            `gorm:"index:idx_app_job_candidate,unique;not null"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'applied'"`
	CoverNote   string            `gorm:"type:text"`
}
