package models

// Swipe is one entry of the discovery-feed event log.
type Swipe struct {
	BaseModel
	SwiperID  string         `gorm:"index;not null"`
	TargetID  string         `gorm:"index;not null"`
	Direction SwipeDirection `gorm:"type:varchar(10);not null"`
}

// InterestSignal records a passive engagement event (profile or video view).
type InterestSignal struct {
	BaseModel
	ActorID   string       `gorm:"index"`
	SubjectID string       `gorm:"index;not null"`
	Kind      InterestKind `gorm:"type:varchar(20);not null"`
}
