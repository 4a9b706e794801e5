package recipe

import (
	"context"

	"Recipe-Publisher/entities"

	"gorm.io/gorm"
)

type (
	GenerationLogRepository interface {
		CreateLog(ctx context.Context, entry *entities.GenerationLog) error
		GetLogsBySlug(ctx context.Context, slug string) ([]*entities.GenerationLog, error)
	}

	generationLogRepository struct {
		db *gorm.DB
	}
)

func NewGenerationLogRepository(db *gorm.DB) GenerationLogRepository {
	return &generationLogRepository{db: db}
}

func (r *generationLogRepository) CreateLog(ctx context.Context, entry *entities.GenerationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *generationLogRepository) GetLogsBySlug(ctx context.Context, slug string) ([]*entities.GenerationLog, error) {
	var logs []*entities.GenerationLog
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		Order("created_at desc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
