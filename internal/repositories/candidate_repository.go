package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobmatch_backend/internal/models"
)

var ErrCandidateNotFound = errors.New("candidate profile not found")

// CandidateSearchCriteria narrows the candidate pool before text scoring.
type CandidateSearchCriteria struct {
	Location        string
	ActivelyLooking *bool
	Limit           int
	Offset          int
}

type CandidateRepository interface {
	FindByID(id string) (*models.CandidateProfile, error)
	FindByUserID(userID string) (*models.CandidateProfile, error)
	FindPublic(criteria CandidateSearchCriteria) ([]models.CandidateProfile, error)
	UpdateResumeText(id string, resumeText string) error
	IncrementProfileViews(id string) error
}

type CandidateRepositoryImpl struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &CandidateRepositoryImpl{db: db}
}

func (r *CandidateRepositoryImpl) FindByID(id string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CandidateRepositoryImpl) FindByUserID(userID string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindPublic returns only profiles whose owners made them visible to search.
func (r *CandidateRepositoryImpl) FindPublic(criteria CandidateSearchCriteria) ([]models.CandidateProfile, error) {
	query := r.db.Where("is_public = ?", true)

	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.ActivelyLooking != nil {
		query = query.Where("actively_looking = ?", *criteria.ActivelyLooking)
	}
	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit)
	}
	if criteria.Offset > 0 {
		query = query.Offset(criteria.Offset)
	}

	var profiles []models.CandidateProfile
	if err := query.Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *CandidateRepositoryImpl) UpdateResumeText(id string, resumeText string) error {
	result := r.db.Model(&models.CandidateProfile{}).Where("id = ?", id).
		Update("resume_text", resumeText)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (r *CandidateRepositoryImpl) IncrementProfileViews(id string) error {
	return r.db.Model(&models.CandidateProfile{}).Where("id = ?", id).
		UpdateColumn("profile_views", gorm.Expr("profile_views + 1")).Error
}
