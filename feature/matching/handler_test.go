package matching_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"mosb-portal/core/database"
	"mosb-portal/core/reconcile"
	"mosb-portal/feature/matching"
	"mosb-portal/feature/matching/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	feature := matching.NewFeature(db, matching.Config{}, zap.NewNop())
	app := fiber.New()
	assert.NoError(t, feature.Load(app))

	// One LPO with a short delivery and an unexpected extra item.
	seed := []any{
		&models.LpoItem{LpoNumber: "LPO-2024-000123", ItemCode: "CEM-001", ItemName: "Cement Bags", OrderedQuantity: 100},
		&models.LpoItem{LpoNumber: "LPO-2024-000123", ItemCode: "STL-104", ItemName: "Steel Rods", OrderedQuantity: 50},
		&models.InboundItem{LpoNumber: "LPO-2024-000123", ItemCode: "CEM-001", Quantity: 60},
		&models.InboundItem{LpoNumber: "LPO-2024-000123", ItemCode: "CEM-001", Quantity: 40},
		&models.InboundItem{LpoNumber: "LPO-2024-000123", ItemCode: "PNT-202", Quantity: 5},
	}
	for _, row := range seed {
		assert.NoError(t, db.Create(row).Error)
	}

	return app
}

func TestHandleReconcile(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reconciliation/LPO-2024-000123", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report reconcile.Report
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&report))

	assert.Equal(t, "LPO-2024-000123", report.OrderID)
	assert.Equal(t, []reconcile.Line{
		{ItemCode: "CEM-001", ItemName: "Cement Bags", OrderedQuantity: 100, ReceivedQuantity: 100, Difference: 0, Status: reconcile.StatusMatch},
		{ItemCode: "STL-104", ItemName: "Steel Rods", OrderedQuantity: 50, ReceivedQuantity: 0, Difference: -50, Status: reconcile.StatusMissing},
		{ItemCode: "PNT-202", ItemName: reconcile.UnknownItemName, OrderedQuantity: 0, ReceivedQuantity: 5, Difference: 5, Status: reconcile.StatusExcess},
	}, report.Lines)
}

func TestHandleReconcileCaseInsensitive(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reconciliation/lpo-2024-000123", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleReconcileUnknownLpo(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reconciliation/LPO-2024-999999", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
