package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:128;not null"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"size:512"`
	OwnerID     uint   `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
