package activity

import (
	"context"
	"time"
)

type Action string

const (
	ActionSignup Action = "SIGNUP"
	ActionLogin  Action = "LOGIN"
)

// Table: activity_logs
type Log struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_activity_user_created,priority:1"`
	Action    Action    `gorm:"column:action;size:32;not null"`
	IPAddress string    `gorm:"column:ip_address;size:64;not null"`
	UserAgent string    `gorm:"column:user_agent;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_activity_user_created,priority:2"`
}

func (Log) TableName() string { return "activity_logs" }

type Repository interface {
	Record(ctx context.Context, l *Log) error
}
