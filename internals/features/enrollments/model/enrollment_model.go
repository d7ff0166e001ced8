package model

import (
	"time"
)

type EnrollmentModel struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentID  uint      `gorm:"column:student_id;not null;uniqueIndex:idx_enrollments_student_course" json:"student_id"`
	CourseID   uint      `gorm:"column:course_id;not null;uniqueIndex:idx_enrollments_student_course" json:"course_id"`
	EnrolledAt time.Time `gorm:"column:enrolled_at;not null;autoCreateTime" json:"enrolled_at"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
