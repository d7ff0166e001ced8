package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCtx(t *testing.T, target string, fn func(c *fiber.Ctx)) {
	t.Helper()
	app := fiber.New()
	app.Get("/test", func(c *fiber.Ctx) error {
		fn(c)
		return nil
	})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	_, err := app.Test(req, -1)
	require.NoError(t, err)
}

func TestResolvePagingDefaultsAndCap(t *testing.T) {
	withCtx(t, "/test", func(c *fiber.Ctx) {
		p, err := ResolvePaging(c, 100, 500)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Skip)
		assert.Equal(t, 100, p.Limit)
	})

	withCtx(t, "/test?skip=10&limit=9999", func(c *fiber.Ctx) {
		p, err := ResolvePaging(c, 100, 500)
		require.NoError(t, err)
		assert.Equal(t, 10, p.Skip)
		assert.Equal(t, 500, p.Limit)
	})

	withCtx(t, "/test?skip=abc", func(c *fiber.Ctx) {
		_, err := ResolvePaging(c, 100, 500)
		assert.Error(t, err)
	})
}

func TestQueryUintEmptyIsAbsent(t *testing.T) {
	withCtx(t, "/test?course_id=", func(c *fiber.Ctx) {
		v, err := QueryUint(c, "course_id")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	withCtx(t, "/test?course_id=7", func(c *fiber.Ctx) {
		v, err := QueryUint(c, "course_id")
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.EqualValues(t, 7, *v)
	})

	withCtx(t, "/test?course_id=x", func(c *fiber.Ctx) {
		_, err := QueryUint(c, "course_id")
		assert.Error(t, err)
	})
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "hola", TruncateRunes("hola", 10))
	assert.Equal(t, "ho", TruncateRunes("hola", 2))
	assert.Equal(t, "áé", TruncateRunes("áéí", 2))
}
