package history_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"mosb-portal/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, *history.Store) {
	t.Helper()

	store, err := history.NewStore(history.NewMemoryMedium(), 10)
	assert.NoError(t, err)

	app := fiber.New()
	feature := history.NewFeature(store, zap.NewNop())
	assert.NoError(t, feature.Load(app))

	return app, store
}

func TestHandleList(t *testing.T) {
	app, store := setupApp(t)

	for _, code := range []string{"LPO-2024-000001", "LPO-2024-000002", "LPO-2024-000003"} {
		_, err := store.Append(history.Entry{Code: code, Status: history.StatusSuccess})
		assert.NoError(t, err)
	}

	t.Run("Whole Log", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/history/", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var entries []history.Entry
		body, _ := io.ReadAll(resp.Body)
		assert.NoError(t, json.Unmarshal(body, &entries))
		assert.Len(t, entries, 3)
		assert.Equal(t, "LPO-2024-000003", entries[0].Code)
	})

	t.Run("Limited", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/history/?limit=1", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)

		var entries []history.Entry
		body, _ := io.ReadAll(resp.Body)
		assert.NoError(t, json.Unmarshal(body, &entries))
		assert.Len(t, entries, 1)
	})

	t.Run("By Date", func(t *testing.T) {
		today := time.Now().Format("2006-01-02")
		req := httptest.NewRequest("GET", "/history/?date="+today, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var entries []history.Entry
		body, _ := io.ReadAll(resp.Body)
		assert.NoError(t, json.Unmarshal(body, &entries))
		assert.Len(t, entries, 3)
	})

	t.Run("Bad Date", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/history/?date=junk", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleRemove(t *testing.T) {
	app, store := setupApp(t)

	entry, err := store.Append(history.Entry{Code: "LPO-2024-000001", Status: history.StatusSuccess})
	assert.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/history/"+entry.ID, nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, store.Len())

	// Unknown ids are still a 204.
	req = httptest.NewRequest("DELETE", "/history/no-such-id", nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestHandleClear(t *testing.T) {
	app, store := setupApp(t)

	_, err := store.Append(history.Entry{Code: "LPO-2024-000001", Status: history.StatusSuccess})
	assert.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/history/", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, store.Len())
}
