package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobmatch_backend/internal/models"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	FindByID(id string) (*models.Company, error)
	FindRecruiterUserIDs(companyID string) ([]string, error)
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) FindByID(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

// FindRecruiterUserIDs lists the user ids of every recruiter attached to the
// company. Company-level signals aggregate over all of them.
func (r *CompanyRepositoryImpl) FindRecruiterUserIDs(companyID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.RecruiterProfile{}).Where("company_id = ?", companyID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
