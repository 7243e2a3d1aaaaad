package mysql

import (
	"context"

	"lodge-portal/internal/domain/activity"

	"gorm.io/gorm"
)

type ActivityRepository struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository { return &ActivityRepository{db: db} }

func (r *ActivityRepository) Record(ctx context.Context, l *activity.Log) error {
	return r.db.WithContext(ctx).Create(l).Error
}
