package model

import (
	"time"
)

type AssignmentModel struct {
	ID          uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	CourseID    uint       `gorm:"column:course_id;not null;index" json:"course_id"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	MaxScore    *float64   `gorm:"column:max_score" json:"max_score,omitempty"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }
