package mysql

import (
	"context"
	"errors"

	"lodge-portal/internal/domain/handoff"

	"gorm.io/gorm"
)

type HandoffRepository struct{ db *gorm.DB }

func NewHandoffRepository(db *gorm.DB) *HandoffRepository { return &HandoffRepository{db: db} }

func (r *HandoffRepository) Latest(ctx context.Context) (*handoff.Config, error) {
	var out handoff.Config
	err := r.db.WithContext(ctx).Order("updated_at DESC, id DESC").First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Replace swaps the stored configuration for c atomically.
func (r *HandoffRepository) Replace(ctx context.Context, c *handoff.Config) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&handoff.Config{}).Error; err != nil {
			return err
		}
		c.ID = 0
		return tx.Create(c).Error
	})
}
