package rayid_test

import (
	"net/http/httptest"
	"testing"

	"blob-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		rid, _ := c.Locals("ray_id").(string)
		return c.SendString(rid)
	})
	return app
}

func TestAssignsRayID(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(rayid.Header)
	require.NotEmpty(t, rid)

	// Generated ids are uuids.
	_, err = uuid.Parse(rid)
	assert.NoError(t, err)
}

func TestKeepsCallerRayID(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "upstream-trace-7")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-trace-7", resp.Header.Get(rayid.Header))
}
