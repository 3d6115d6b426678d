package models

type ReviewModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Rating    int    `gorm:"not null"`
	Headline  string `gorm:"size:128;not null"`
	Body      string `gorm:"type:text"`
	OwnerID   uint   `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

type ReviewRequestModel struct {
	ID              uint  `gorm:"primaryKey"`
	TicketID        uint  `gorm:"not null;index"`
	RequesterID     uint  `gorm:"not null;index"`
	RequestedUserID uint  `gorm:"not null;index"`
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
}

func (ReviewRequestModel) TableName() string {
	return "review_requests"
}
