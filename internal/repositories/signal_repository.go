package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobmatch_backend/internal/models"
)

var ErrSignalNotFound = errors.New("signal snapshot not found")

type SignalRepository interface {
	UpsertCandidateSignal(signal *models.CandidateSignal) error
	UpsertRecruiterSignal(signal *models.RecruiterSignal) error
	FindCandidateSignal(candidateID string) (*models.CandidateSignal, error)
	FindRecruiterSignal(companyID string) (*models.RecruiterSignal, error)
}

type SignalRepositoryImpl struct {
	db *gorm.DB
}

func NewSignalRepository(db *gorm.DB) SignalRepository {
	return &SignalRepositoryImpl{db: db}
}

// UpsertCandidateSignal fully overwrites the snapshot for the candidate, so
// recomputation never accumulates stale values.
func (r *SignalRepositoryImpl) UpsertCandidateSignal(signal *models.CandidateSignal) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "candidate_id"}},
		UpdateAll: true,
	}).Create(signal).Error
}

func (r *SignalRepositoryImpl) UpsertRecruiterSignal(signal *models.RecruiterSignal) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "company_id"}},
		UpdateAll: true,
	}).Create(signal).Error
}

func (r *SignalRepositoryImpl) FindCandidateSignal(candidateID string) (*models.CandidateSignal, error) {
	var signal models.CandidateSignal
	err := r.db.First(&signal, "candidate_id = ?", candidateID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSignalNotFound
		}
		return nil, err
	}
	return &signal, nil
}

func (r *SignalRepositoryImpl) FindRecruiterSignal(companyID string) (*models.RecruiterSignal, error) {
	var signal models.RecruiterSignal
	err := r.db.First(&signal, "company_id = ?", companyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSignalNotFound
		}
		return nil, err
	}
	return &signal, nil
}
