package models

type Company struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description string
	Website     string
	City        string
	IsVerified  bool `gorm:"default:false"`

	Recruiters []RecruiterProfile `gorm:"foreignKey:CompanyID"`
}

type RecruiterProfile struct {
	BaseModel
	UserID    string `gorm:"uniqueIndex;not null"`
	CompanyID string `gorm:"index;not null"`
	Title     string
}
