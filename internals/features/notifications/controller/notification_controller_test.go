package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	notificationModel "semillero_backend/internals/features/notifications/model"
	userModel "semillero_backend/internals/features/users/model"
	"semillero_backend/internals/testutil"
)

func seedUser(t *testing.T, db *gorm.DB, email string) *userModel.UserModel {
	t.Helper()
	user := &userModel.UserModel{Email: email, Role: "student"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCreateNotificationRequiresUser(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/notifications",
		map[string]any{"user_id": 999, "title": "Hola"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", body["message"])
}

func TestCreateNotificationDefaultsCategory(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	user := seedUser(t, db, "alumno@x.com")

	status, body := testutil.DoJSON(t, app, http.MethodPost, "/notifications",
		map[string]any{"user_id": user.ID, "title": "Hola"})
	require.Equal(t, http.StatusCreated, status)

	data := testutil.Data(t, body)
	assert.Equal(t, "general", data["category"])
	assert.Equal(t, false, data["is_read"])
}

func TestMarkNotificationRead(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	user := seedUser(t, db, "alumno@x.com")

	notification := &notificationModel.NotificationModel{UserID: user.ID, Title: "Hola", Category: "general"}
	require.NoError(t, db.Create(notification).Error)

	status, body := testutil.DoJSON(t, app, http.MethodPatch,
		fmt.Sprintf("/notifications/%d/read", notification.ID),
		map[string]any{"is_read": true})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, testutil.Data(t, body)["is_read"])
}

func TestListNotificationsFilters(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	user := seedUser(t, db, "alumno@x.com")
	other := seedUser(t, db, "otro@x.com")

	require.NoError(t, db.Create(&notificationModel.NotificationModel{UserID: user.ID, Title: "A", Category: "general"}).Error)
	require.NoError(t, db.Create(&notificationModel.NotificationModel{UserID: user.ID, Title: "B", Category: "deadline", IsRead: true}).Error)
	require.NoError(t, db.Create(&notificationModel.NotificationModel{UserID: other.ID, Title: "C", Category: "general"}).Error)

	status, body := testutil.DoJSON(t, app, http.MethodGet,
		fmt.Sprintf("/notifications?user_id=%d", user.ID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, testutil.DataList(t, body), 2)

	status, body = testutil.DoJSON(t, app, http.MethodGet,
		fmt.Sprintf("/notifications?user_id=%d&is_read=false", user.ID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, testutil.DataList(t, body), 1)

	status, body = testutil.DoJSON(t, app, http.MethodGet, "/notifications?category=deadline", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, testutil.DataList(t, body), 1)
}

func TestDeleteNotificationIsPermanent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)
	user := seedUser(t, db, "alumno@x.com")

	notification := &notificationModel.NotificationModel{UserID: user.ID, Title: "Hola", Category: "general"}
	require.NoError(t, db.Create(notification).Error)

	status, _ := testutil.DoJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/notifications/%d", notification.ID), nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = testutil.DoJSON(t, app, http.MethodGet,
		fmt.Sprintf("/notifications/%d", notification.ID), nil)
	assert.Equal(t, http.StatusNotFound, status)
}
