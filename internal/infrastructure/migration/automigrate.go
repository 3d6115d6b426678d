package migration

import (
	"revu/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.ReviewModel{},
		&models.ReviewRequestModel{},
		&models.FollowModel{},
		&models.BlockModel{},
	}
}
