package model

import (
	"time"
)

type SubmissionModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AssignmentID uint      `gorm:"column:assignment_id;not null;uniqueIndex:idx_submissions_assignment_student" json:"assignment_id"`
	StudentID    uint      `gorm:"column:student_id;not null;uniqueIndex:idx_submissions_assignment_student" json:"student_id"`
	Content      *string   `gorm:"column:content;type:text" json:"content,omitempty"`
	Score        *float64  `gorm:"column:score" json:"score,omitempty"`
	Feedback     *string   `gorm:"column:feedback;type:text" json:"feedback,omitempty"`
	SubmittedAt  time.Time `gorm:"column:submitted_at;not null;autoCreateTime" json:"submitted_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }
