package models

import (
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type CandidateProfile struct {
	BaseModel
	UserID   string `gorm:"uniqueIndex;not null"`
	Name     string `gorm:"not null"`
	Headline string
	Bio      string         `gorm:"type:text"` // may contain markup from the profile editor
	Skills   pq.StringArray `gorm:"type:text[]"`
	Location string

	Experience     datatypes.JSON `gorm:"type:jsonb"` // []ExperienceEntry
	Education      datatypes.JSON `gorm:"type:jsonb"` // []EducationEntry
	Certifications datatypes.JSON `gorm:"type:jsonb"` // []CertificationEntry

	ResumeURL      string
	ResumeText     string         `gorm:"type:text"` // plain text extracted from the uploaded resume
	ResumeMetadata datatypes.JSON `gorm:"type:jsonb"`
	VideoURL       string

	ActivelyLooking bool `gorm:"default:true"`
	IsPublic        bool `gorm:"default:true"`
	ProfileViews    int  `gorm:"default:0"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

type EducationEntry struct {
	Degree string `json:"degree"`
	Major  string `json:"major"`
	School string `json:"school"`
}

type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
}

// ResumeMetadataDoc is the structured output of the resume parsing service.
type ResumeMetadataDoc struct {
	Summary    string   `json:"summary"`
	Skills     []string `json:"skills"`
	Highlights []string `json:"highlights"`
}

// GetExperience returns the experience entries, empty on absent or bad data.
func (p *CandidateProfile) GetExperience() []ExperienceEntry {
	var entries []ExperienceEntry
	if len(p.Experience) > 0 {
		_ = json.Unmarshal(p.Experience, &entries)
	}
	return entries
}

func (p *CandidateProfile) GetEducation() []EducationEntry {
	var entries []EducationEntry
	if len(p.Education) > 0 {
		_ = json.Unmarshal(p.Education, &entries)
	}
	return entries
}

func (p *CandidateProfile) GetCertifications() []CertificationEntry {
	var entries []CertificationEntry
	if len(p.Certifications) > 0 {
		_ = json.Unmarshal(p.Certifications, &entries)
	}
	return entries
}

func (p *CandidateProfile) SetExperience(entries []ExperienceEntry) {
	data, _ := json.Marshal(entries)
	p.Experience = datatypes.JSON(data)
}

func (p *CandidateProfile) SetEducation(entries []EducationEntry) {
	data, _ := json.Marshal(entries)
	p.Education = datatypes.JSON(data)
}

func (p *CandidateProfile) SetCertifications(entries []CertificationEntry) {
	data, _ := json.Marshal(entries)
	p.Certifications = datatypes.JSON(data)
}

func (p *CandidateProfile) SetResumeMetadata(doc ResumeMetadataDoc) {
	data, _ := json.Marshal(doc)
	p.ResumeMetadata = datatypes.JSON(data)
}
