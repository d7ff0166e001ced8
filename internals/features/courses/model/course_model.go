package model

import (
	"time"
)

type CourseModel struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description    *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	GoogleCourseID *string   `gorm:"column:google_course_id;type:varchar(255);uniqueIndex" json:"google_course_id,omitempty"`
	TeacherID      uint      `gorm:"column:teacher_id;not null;index" json:"teacher_id"`
	IsActive       bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (CourseModel) TableName() string { return "courses" }
