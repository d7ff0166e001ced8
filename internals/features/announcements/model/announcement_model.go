package model

import (
	"time"
)

type AnnouncementModel struct {
	ID          uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content     *string    `gorm:"column:content;type:text" json:"content,omitempty"`
	CreatedByID *uint      `gorm:"column:created_by_id" json:"created_by_id,omitempty"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	StartAt     *time.Time `gorm:"column:start_at" json:"start_at,omitempty"`
	EndAt       *time.Time `gorm:"column:end_at" json:"end_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
