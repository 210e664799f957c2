package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gasops-api/internal/application/analytics"
	"github.com/jhoicas/gasops-api/internal/application/usecase"
	"github.com/jhoicas/gasops-api/internal/domain/order"
	infraai "github.com/jhoicas/gasops-api/internal/infrastructure/ai"
	"github.com/jhoicas/gasops-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/gasops-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación completa sobre el snapshot de
// demostración, con el adaptador Gemini sin credencial (degrada a mensaje fijo).
func buildTestApp() *fiber.App {
	store := memory.NewSeededStore()
	orderRepo := memory.NewOrderRepository(store)
	cylinderRepo := memory.NewCylinderRepository(store)
	inspectionRepo := memory.NewInspectionRepository(store)
	userRepo := memory.NewUserRepository(store)
	announcementRepo := memory.NewAnnouncementRepository(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		OrderUC:        usecase.NewOrderUseCase(orderRepo, userRepo, order.Agent{ID: "u3", Name: "Pedro Fuentes"}),
		CylinderUC:     usecase.NewCylinderUseCase(cylinderRepo),
		SafetyUC:       usecase.NewSafetyUseCase(inspectionRepo, infraai.NewGeminiService("", "gemini-1.5-flash")),
		UserUC:         usecase.NewUserUseCase(userRepo),
		AnnouncementUC: usecase.NewAnnouncementUseCase(announcementRepo),
		DashboardUC:    analytics.NewDashboardUseCase(orderRepo, cylinderRepo, inspectionRepo),
	})
	return app
}

// doRequest lanza una petición con la identidad simulada y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, method, path, actorID, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if actorID != "" {
		req.Header.Set(apphttp.HeaderActorID, actorID)
	}
	if role != "" {
		req.Header.Set(apphttp.HeaderActorRole, role)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests middleware de actor y capacidades
// ──────────────────────────────────────────────────────────────────────────────

func TestActor_SinCabecerasRechaza(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/api/orders/", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestActor_RolDesconocidoRechaza(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/api/orders/", "u1", "SUPERUSER")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// El cliente no tiene la capacidad de gestión de usuarios: 403, no crash.
func TestCapacidad_ClienteNoGestionaUsuarios(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/api/users/", "u5", "CUSTOMER")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCapacidad_ClienteNoVeCilindros(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/api/cylinders/", "u5", "CUSTOMER")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCapacidad_JefeDeEstacionGestionaUsuarios(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/api/users/", "u2", "STATION_MANAGER")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de pedidos
// ──────────────────────────────────────────────────────────────────────────────

type orderItem struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	DeliveryManID   string `json:"delivery_man_id"`
	DeliveryManName string `json:"delivery_man_name"`
}

type orderList struct {
	Items []orderItem `json:"items"`
	Total int         `json:"total"`
}

// El cliente u5 solo ve sus pedidos (o1 y o3 del snapshot).
func TestOrders_ListadoDeCliente(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/api/orders/", "u5", "CUSTOMER")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got orderList
	decodeBody(t, resp, &got)
	require.Equal(t, 2, got.Total)
	assert.Equal(t, "o1", got.Items[0].ID)
	assert.Equal(t, "o3", got.Items[1].ID)
}

// Ciclo completo vía HTTP: assign (jefe) → deliver → complete (repartidor),
// y el assign sobre el pedido completado responde 409.
func TestOrders_CicloDeVidaCompleto(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/orders/o3/assign", "u2", "STATION_MANAGER")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var assigned orderItem
	decodeBody(t, resp, &assigned)
	assert.Equal(t, "ASSIGNED", assigned.Status)
	assert.Equal(t, "u3", assigned.DeliveryManID)
	assert.Equal(t, "Pedro Fuentes", assigned.DeliveryManName)

	resp = doRequest(t, app, http.MethodPost, "/api/orders/o3/deliver", "u3", "DELIVERY")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var delivering orderItem
	decodeBody(t, resp, &delivering)
	assert.Equal(t, "DELIVERING", delivering.Status)

	resp = doRequest(t, app, http.MethodPost, "/api/orders/o3/complete", "u3", "DELIVERY")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var completed orderItem
	decodeBody(t, resp, &completed)
	assert.Equal(t, "COMPLETED", completed.Status)

	resp = doRequest(t, app, http.MethodPost, "/api/orders/o3/assign", "u2", "STATION_MANAGER")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

// La capacidad corta antes que la máquina de estados: un cliente no puede
// asignar aunque el pedido esté PENDING.
func TestOrders_AsignarSinCapacidad(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodPost, "/api/orders/o3/assign", "u5", "CUSTOMER")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

// Transición ilegal con capacidad válida: el repartidor no puede entregar un
// pedido aún PENDING.
func TestOrders_EntregarPendienteRechaza(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodPost, "/api/orders/o3/deliver", "u3", "DELIVERY")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestOrders_FiltroDeEstadoInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/api/orders/?status=UNKNOWN", "u1", "ADMIN")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de seguridad y dashboard
// ──────────────────────────────────────────────────────────────────────────────

// Sin credencial de IA el informe responde 200 con el mensaje fijo.
func TestSafety_AnalisisSinCredencial(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodPost, "/api/safety/analysis", "u4", "INSPECTOR")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got struct {
		Analysis string `json:"analysis"`
		Fallback bool   `json:"fallback"`
	}
	decodeBody(t, resp, &got)
	assert.Equal(t, usecase.MsgNoAPIKey, got.Analysis)
	assert.True(t, got.Fallback)
}

func TestDashboard_Resumen(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/api/dashboard/summary", "u5", "CUSTOMER")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got struct {
		TotalOrders    int            `json:"total_orders"`
		PendingOrders  int            `json:"pending_orders"`
		PendingHazards int            `json:"pending_hazards"`
		OrdersByStatus map[string]int `json:"orders_by_status"`
	}
	decodeBody(t, resp, &got)
	assert.Equal(t, 3, got.TotalOrders)
	assert.Equal(t, 1, got.PendingOrders)
	assert.Equal(t, 1, got.PendingHazards)
	assert.Len(t, got.OrdersByStatus, 5)
}
