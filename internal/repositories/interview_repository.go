package repositories

import (
	"gorm.io/gorm"

	"jobmatch_backend/internal/models"
)

type InterviewRepository interface {
	StatusCountsByCandidate(candidateID string) (map[models.InterviewStatus]int64, error)
	StatusCountsByRecruiters(recruiterIDs []string) (map[models.InterviewStatus]int64, error)
}

type InterviewRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &InterviewRepositoryImpl{db: db}
}

type statusCount struct {
	Status models.InterviewStatus
	Count  int64
}

func (r *InterviewRepositoryImpl) StatusCountsByCandidate(candidateID string) (map[models.InterviewStatus]int64, error) {
	return r.statusCounts(r.db.Where("candidate_id = ?", candidateID))
}

func (r *InterviewRepositoryImpl) StatusCountsByRecruiters(recruiterIDs []string) (map[models.InterviewStatus]int64, error) {
	if len(recruiterIDs) == 0 {
		return map[models.InterviewStatus]int64{}, nil
	}
	return r.statusCounts(r.db.Where("recruiter_id IN ?", recruiterIDs))
}

func (r *InterviewRepositoryImpl) statusCounts(query *gorm.DB) (map[models.InterviewStatus]int64, error) {
	var rows []statusCount
	err := query.Model(&models.Interview{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.InterviewStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
