package repositories

import (
	"gorm.io/gorm"

	"jobmatch_backend/internal/models"
)

type MessageRepository interface {
	FindSentBy(userIDs []string) ([]models.DirectMessage, error)
	FindReceivedBy(userIDs []string) ([]models.DirectMessage, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) FindSentBy(userIDs []string) ([]models.DirectMessage, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var messages []models.DirectMessage
	err := r.db.Where("sender_id IN ?", userIDs).Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepositoryImpl) FindReceivedBy(userIDs []string) ([]models.DirectMessage, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var messages []models.DirectMessage
	err := r.db.Where("receiver_id IN ?", userIDs).Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
