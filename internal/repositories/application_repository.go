package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobmatch_backend/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	FindByID(id string) (*models.Application, error)
	FindByJobID(jobID string) ([]models.Application, error)
	FindByJobIDs(jobIDs []string) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJobID(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Where("job_id = ?", jobID).Order("created_at ASC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) FindByJobIDs(jobIDs []string) ([]models.Application, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}
	var applications []models.Application
	err := r.db.Where("job_id IN ?", jobIDs).Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}
