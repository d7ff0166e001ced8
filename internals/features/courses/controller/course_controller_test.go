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

func seedTeacher(t *testing.T, db *gorm.DB) *userModel.UserModel {
	t.Helper()
	teacher := &userModel.UserModel{Email: "profe@x.com", Role: "teacher"}
	require.NoError(t, db.Create(teacher).Error)
	return teacher
}

func TestCreateCourseRequiresExistingTeacher(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/courses",
		map[string]any{"name": "Go básico", "teacher_id": 999})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Teacher not found", body["message"])
}

func TestCreateCourseWithCounts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	teacher := seedTeacher(t, db)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/courses",
		map[string]any{"name": "Go básico", "teacher_id": teacher.ID})
	require.Equal(t, http.StatusCreated, status)

	data := testutil.Data(t, body)
	assert.Equal(t, "Go básico", data["name"])
	assert.EqualValues(t, 0, data["enrollment_count"])
	assert.EqualValues(t, 0, data["assignment_count"])
	assert.Equal(t, true, data["is_active"])
}

func TestCreateCourseDuplicateGoogleID(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	teacher := seedTeacher(t, db)

	payload := map[string]any{"name": "Curso A", "teacher_id": teacher.ID, "google_course_id": "g-123"}
	status, _ := testutil.DoJSON(t, app, http.MethodPost, "/courses", payload)
	require.Equal(t, http.StatusCreated, status)

	payload["name"] = "Curso B"
	status, body := testutil.DoJSON(t, app, http.MethodPost, "/courses", payload)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Google course ID already exists", body["message"])
}

func TestUpdateCourseIsPartial(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	teacher := seedTeacher(t, db)

	desc := "Descripción original"
	course := &courseModel.CourseModel{Name: "Antes", Description: &desc, TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(course).Error)

	status, body := testutil.DoJSON(t, app, http.MethodPut, fmt.Sprintf("/courses/%d", course.ID),
		map[string]any{"name": "New"})
	require.Equal(t, http.StatusOK, status)

	data := testutil.Data(t, body)
	assert.Equal(t, "New", data["name"])
	assert.Equal(t, "Descripción original", data["description"])
	assert.Equal(t, true, data["is_active"])
}

func TestSoftDeleteCourse(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	teacher := seedTeacher(t, db)

	course := &courseModel.CourseModel{Name: "Para borrar", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(course).Error)

	status, _ := testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/courses/%d", course.ID), nil)
	require.Equal(t, http.StatusOK, status)

	// excluido del listado por defecto
	status, body := testutil.DoJSON(t, app, http.MethodGet, "/courses", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, testutil.DataList(t, body))

	// pero sigue recuperable por id
	status, body = testutil.DoJSON(t, app, http.MethodGet, fmt.Sprintf("/courses/%d", course.ID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, testutil.Data(t, body)["is_active"])

	// y visible pidiendo inactivos
	status, body = testutil.DoJSON(t, app, http.MethodGet, "/courses?is_active=false", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, testutil.DataList(t, body), 1)
}

func TestListCoursesFiltersByTeacher(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	teacher := seedTeacher(t, db)
	other := &userModel.UserModel{Email: "otro@x.com", Role: "teacher"}
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, db.Create(&courseModel.CourseModel{Name: "A", TeacherID: teacher.ID, IsActive: true}).Error)
	require.NoError(t, db.Create(&courseModel.CourseModel{Name: "B", TeacherID: other.ID, IsActive: true}).Error)

	status, body := testutil.DoJSON(t, app, http.MethodGet,
		fmt.Sprintf("/courses?teacher_id=%d", teacher.ID), nil)
	require.Equal(t, http.StatusOK, status)
	items := testutil.DataList(t, body)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].(map[string]any)["name"])
}

func TestGetCourseNotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)

	status, _ := testutil.DoJSON(t, app, http.MethodGet, "/courses/12345", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
