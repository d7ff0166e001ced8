package controller_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	assignmentModel "semillero_backend/internals/features/assignments/model"
	courseModel "semillero_backend/internals/features/courses/model"
	userModel "semillero_backend/internals/features/users/model"
	"semillero_backend/internals/testutil"
)

func seedCourse(t *testing.T, db *gorm.DB) *courseModel.CourseModel {
	t.Helper()
	teacher := &userModel.UserModel{Email: "profe@x.com", Role: "teacher"}
	require.NoError(t, db.Create(teacher).Error)
	course := &courseModel.CourseModel{Name: "Curso", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedStudent(t *testing.T, db *gorm.DB, email string) *userModel.UserModel {
	t.Helper()
	student := &userModel.UserModel{Email: email, Role: "student"}
	require.NoError(t, db.Create(student).Error)
	return student
}

func TestCreateAssignmentRequiresCourse(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/assignments",
		map[string]any{"title": "Tarea 1", "course_id": 999})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found", body["message"])
}

func TestAssignmentLifecycle(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	course := seedCourse(t, db)

	due := time.Now().UTC().Add(72 * time.Hour).Format(time.RFC3339)
	status, body := testutil.DoJSON(t, app, http.MethodPost, "/assignments",
		map[string]any{"title": "Tarea 1", "course_id": course.ID, "due_date": due, "max_score": 100})
	require.Equal(t, http.StatusCreated, status)
	data := testutil.Data(t, body)
	assert.EqualValues(t, 0, data["submission_count"])
	id := data["id"]

	// update parcial: solo el título cambia
	status, body = testutil.DoJSON(t, app, http.MethodPut, fmt.Sprintf("/assignments/%v", id),
		map[string]any{"title": "Tarea 1 (v2)"})
	require.Equal(t, http.StatusOK, status)
	data = testutil.Data(t, body)
	assert.Equal(t, "Tarea 1 (v2)", data["title"])
	assert.EqualValues(t, 100, data["max_score"])

	// soft delete: fuera del listado por defecto, recuperable por id
	status, _ = testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/assignments/%v", id), nil)
	require.Equal(t, http.StatusOK, status)

	status, body = testutil.DoJSON(t, app, http.MethodGet, "/assignments", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, testutil.DataList(t, body))

	status, body = testutil.DoJSON(t, app, http.MethodGet, fmt.Sprintf("/assignments/%v", id), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, testutil.Data(t, body)["is_active"])
}

func TestCreateSubmissionValidatesAndConflicts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	course := seedCourse(t, db)
	student := seedStudent(t, db, "alumno@x.com")

	assignment := &assignmentModel.AssignmentModel{Title: "Tarea", CourseID: course.ID, IsActive: true}
	require.NoError(t, db.Create(assignment).Error)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/assignments/submissions",
		map[string]any{"assignment_id": 999, "student_id": student.ID})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Assignment not found", body["message"])

	payload := map[string]any{"assignment_id": assignment.ID, "student_id": student.ID, "content": "mi entrega"}
	status, _ = testutil.DoJSON(t, app, http.MethodPost, "/assignments/submissions", payload)
	require.Equal(t, http.StatusCreated, status)

	status, body = testutil.DoJSON(t, app, http.MethodPost, "/assignments/submissions", payload)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Student already submitted this assignment", body["message"])
}

func TestGradeSubmissionPartialUpdate(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	course := seedCourse(t, db)
	student := seedStudent(t, db, "alumno@x.com")

	assignment := &assignmentModel.AssignmentModel{Title: "Tarea", CourseID: course.ID, IsActive: true}
	require.NoError(t, db.Create(assignment).Error)
	content := "mi entrega"
	submission := &assignmentModel.SubmissionModel{
		AssignmentID: assignment.ID, StudentID: student.ID, Content: &content,
	}
	require.NoError(t, db.Create(submission).Error)

	status, body := testutil.DoJSON(t, app, http.MethodPut,
		fmt.Sprintf("/assignments/submissions/%d", submission.ID),
		map[string]any{"score": 95, "feedback": "Muy bien"})
	require.Equal(t, http.StatusOK, status)

	data := testutil.Data(t, body)
	assert.EqualValues(t, 95, data["score"])
	assert.Equal(t, "Muy bien", data["feedback"])
	assert.Equal(t, "mi entrega", data["content"])
}

func TestDeleteSubmissionIsPermanent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	course := seedCourse(t, db)
	student := seedStudent(t, db, "alumno@x.com")

	assignment := &assignmentModel.AssignmentModel{Title: "Tarea", CourseID: course.ID, IsActive: true}
	require.NoError(t, db.Create(assignment).Error)
	submission := &assignmentModel.SubmissionModel{AssignmentID: assignment.ID, StudentID: student.ID}
	require.NoError(t, db.Create(submission).Error)

	status, _ := testutil.DoJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/assignments/submissions/%d", submission.ID), nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = testutil.DoJSON(t, app, http.MethodGet,
		fmt.Sprintf("/assignments/submissions/%d", submission.ID), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListSubmissionsRejectsNonIntegerFilter(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)

	status, body := testutil.DoJSON(t, app, http.MethodGet, "/assignments/submissions?assignment_id=abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "assignment_id debe ser un entero válido", body["message"])

	// cadena vacía cuenta como filtro ausente
	status, _ = testutil.DoJSON(t, app, http.MethodGet, "/assignments/submissions?assignment_id=", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestSubmissionCountReflectsRows(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	course := seedCourse(t, db)
	a := seedStudent(t, db, "a@x.com")
	b := seedStudent(t, db, "b@x.com")

	assignment := &assignmentModel.AssignmentModel{Title: "Tarea", CourseID: course.ID, IsActive: true}
	require.NoError(t, db.Create(assignment).Error)
	require.NoError(t, db.Create(&assignmentModel.SubmissionModel{AssignmentID: assignment.ID, StudentID: a.ID}).Error)
	require.NoError(t, db.Create(&assignmentModel.SubmissionModel{AssignmentID: assignment.ID, StudentID: b.ID}).Error)

	status, body := testutil.DoJSON(t, app, http.MethodGet, fmt.Sprintf("/assignments/%d", assignment.ID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, testutil.Data(t, body)["submission_count"])
}
