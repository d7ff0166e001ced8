// file: internals/testutil/testutil.go
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "semillero_backend/internals/databases"
	"semillero_backend/internals/features/users/service"
	routes "semillero_backend/internals/route"
)

// OpenTestDB abre una sqlite en memoria con el mismo esquema que producción.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	// una sola conexión: cada conexión sqlite :memory: sería una DB distinta
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateAll(db))
	return db
}

// NewApp monta la app completa sobre la DB dada y las listas de roles.
func NewApp(t *testing.T, db *gorm.DB, coordinatorEmails, teacherEmails []string) *fiber.App {
	t.Helper()
	app := fiber.New()
	routes.Register(app, db, service.NewRoleResolver(coordinatorEmails, teacherEmails))
	return app
}

// DoJSON ejecuta un request JSON contra la app y decodifica el envelope.
func DoJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

// Data extrae el objeto data del envelope.
func Data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "data no es un objeto: %v", body["data"])
	return data
}

// DataList extrae el arreglo data del envelope.
func DataList(t *testing.T, body map[string]any) []any {
	t.Helper()
	if body["data"] == nil {
		return nil
	}
	data, ok := body["data"].([]any)
	require.True(t, ok, "data no es un arreglo: %v", body["data"])
	return data
}
