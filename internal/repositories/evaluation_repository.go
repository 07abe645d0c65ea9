package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobmatch_backend/internal/models"
)

var ErrEvaluationNotFound = errors.New("evaluation not found")

type EvaluationRepository interface {
	UpsertEvaluation(evaluation *models.CandidateEvaluation) error
	FindByApplicationID(applicationID string) (*models.CandidateEvaluation, error)
	FindByJobID(jobID string) ([]models.CandidateEvaluation, error)
	ReplaceRankingForJob(jobID string, entries []models.ApplicationRanking) error
	FindRankingByJobID(jobID string, limit int) ([]models.ApplicationRanking, error)
}

type EvaluationRepositoryImpl struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &EvaluationRepositoryImpl{db: db}
}

// UpsertEvaluation keeps exactly one evaluation per application, replacing
// any prior verdict.
func (r *EvaluationRepositoryImpl) UpsertEvaluation(evaluation *models.CandidateEvaluation) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}},
		UpdateAll: true,
	}).Create(evaluation).Error
}

func (r *EvaluationRepositoryImpl) FindByApplicationID(applicationID string) (*models.CandidateEvaluation, error) {
	var evaluation models.CandidateEvaluation
	err := r.db.First(&evaluation, "application_id = ?", applicationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}
	return &evaluation, nil
}

func (r *EvaluationRepositoryImpl) FindByJobID(jobID string) ([]models.CandidateEvaluation, error) {
	var evaluations []models.CandidateEvaluation
	err := r.db.Where("job_id = ?", jobID).Find(&evaluations).Error
	if err != nil {
		return nil, err
	}
	return evaluations, nil
}

// ReplaceRankingForJob swaps the job's ranking rows as one transaction, so
// readers never observe a partially rebuilt ranking.
func (r *EvaluationRepositoryImpl) ReplaceRankingForJob(jobID string, entries []models.ApplicationRanking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.ApplicationRanking{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *EvaluationRepositoryImpl) FindRankingByJobID(jobID string, limit int) ([]models.ApplicationRanking, error) {
	query := r.db.Where("job_id = ?", jobID).Order("rank ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []models.ApplicationRanking
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
