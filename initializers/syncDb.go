package initializers

import (
	"fmt"

	"github.com/Kariqs/vastra-api/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB, logger zerolog.Logger) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	logger.Info().Msg("Database synced successfully.")
	return nil
}
