package migration

import (
	"fmt"

	"Recipe-Publisher/entities"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 backs the generation log primary key
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(&entities.GenerationLog{}); err != nil {
		return fmt.Errorf("migrate generation log: %w", err)
	}

	log.Info().Msg("Database migration complete")
	return nil
}
