package models

type DirectMessage struct {
	BaseModel
	SenderID   string `gorm:"index;not null"`
	ReceiverID string `gorm:"index;not null"`
	Content    string `gorm:"type:text"`
}
