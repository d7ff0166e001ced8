package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	courseModel "semillero_backend/internals/features/courses/model"
	userModel "semillero_backend/internals/features/users/model"
	"semillero_backend/internals/testutil"
)

func seedStudentAndCourse(t *testing.T, db *gorm.DB) (*userModel.UserModel, *courseModel.CourseModel) {
	t.Helper()
	teacher := &userModel.UserModel{Email: "profe@x.com", Role: "teacher"}
	require.NoError(t, db.Create(teacher).Error)
	student := &userModel.UserModel{Email: "alumno@x.com", Role: "student"}
	require.NoError(t, db.Create(student).Error)
	course := &courseModel.CourseModel{Name: "Curso", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(course).Error)
	return student, course
}

func TestCreateEnrollmentValidatesReferences(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	student, course := seedStudentAndCourse(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/enrollments",
		map[string]any{"student_id": 999, "course_id": course.ID})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Student not found", body["message"])

	status, body = testutil.DoJSON(t, app, http.MethodPost, "/enrollments",
		map[string]any{"student_id": student.ID, "course_id": 999})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found", body["message"])
}

func TestCreateEnrollmentTwiceConflicts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	student, course := seedStudentAndCourse(t, db)

	payload := map[string]any{"student_id": student.ID, "course_id": course.ID}
	status, _ := testutil.DoJSON(t, app, http.MethodPost, "/enrollments", payload)
	require.Equal(t, http.StatusCreated, status)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/enrollments", payload)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Student already enrolled in this course", body["message"])
}

func TestDeleteEnrollmentIsPermanent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	student, course := seedStudentAndCourse(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/enrollments",
		map[string]any{"student_id": student.ID, "course_id": course.ID})
	require.Equal(t, http.StatusCreated, status)
	id := testutil.Data(t, body)["id"]

	status, _ = testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/enrollments/%v", id), nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = testutil.DoJSON(t, app, http.MethodGet, fmt.Sprintf("/enrollments/%v", id), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListEnrollmentsByStudent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	student, course := seedStudentAndCourse(t, db)

	status, _ := testutil.DoJSON(t, app, http.MethodPost, "/enrollments",
		map[string]any{"student_id": student.ID, "course_id": course.ID})
	require.Equal(t, http.StatusCreated, status)

	status, body := testutil.DoJSON(t, app, http.MethodGet,
		fmt.Sprintf("/enrollments?student_id=%d", student.ID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, testutil.DataList(t, body), 1)

	status, body = testutil.DoJSON(t, app, http.MethodGet, "/enrollments?student_id=424242", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, testutil.DataList(t, body))
}
