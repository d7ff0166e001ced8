package model

import (
	"time"
)

type NotificationModel struct {
	ID                  uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID              uint       `gorm:"column:user_id;not null;index" json:"user_id"`
	Title               string     `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content             *string    `gorm:"column:content;type:text" json:"content,omitempty"`
	Category            string     `gorm:"column:category;type:varchar(50);not null;default:general" json:"category"`
	IsRead              bool       `gorm:"column:is_read;not null;default:false" json:"is_read"`
	RelatedAssignmentID *uint      `gorm:"column:related_assignment_id" json:"related_assignment_id,omitempty"`
	DueDate             *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	CreatedAt           time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
