package repositories

import (
	"gorm.io/gorm"

	"jobmatch_backend/internal/models"
)

type EngagementRepository interface {
	CountInterest(subjectIDs []string, kind models.InterestKind) (int64, error)
	CountSwipes(targetIDs []string, direction models.SwipeDirection) (int64, error)
}

type EngagementRepositoryImpl struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &EngagementRepositoryImpl{db: db}
}

func (r *EngagementRepositoryImpl) CountInterest(subjectIDs []string, kind models.InterestKind) (int64, error) {
	if len(subjectIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.InterestSignal{}).
		Where("subject_id IN ? AND kind = ?", subjectIDs, kind).
		Count(&count).Error
	return count, err
}

func (r *EngagementRepositoryImpl) CountSwipes(targetIDs []string, direction models.SwipeDirection) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Swipe{}).
		Where("target_id IN ? AND direction = ?", targetIDs, direction).
		Count(&count).Error
	return count, err
}
