package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gasops-api/internal/domain/entity"
	"github.com/jhoicas/gasops-api/internal/domain/order"
)

// testOrders colección con pedidos de u5, de u6 y del pool sin reclamar,
// incluido un cancelado del repartidor u3.
func testOrders() []entity.Order {
	return []entity.Order{
		{ID: "o1", UserID: "u5", Status: entity.OrderCompleted, DeliveryManID: "u3"},
		{ID: "o2", UserID: "u6", Status: entity.OrderDelivering, DeliveryManID: "u3"},
		{ID: "o3", UserID: "u5", Status: entity.OrderPending},
		{ID: "o4", UserID: "u6", Status: entity.OrderAssigned, DeliveryManID: "u7"},
		{ID: "o5", UserID: "u6", Status: entity.OrderCancelled, DeliveryManID: "u3"},
	}
}

func ids(orders []entity.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

// El cliente u5 ve exactamente sus pedidos, en el orden original.
func TestVisible_ClienteSoloVeSusPedidos(t *testing.T) {
	got := order.Visible(testOrders(), entity.RoleCustomer, "u5", "")
	assert.Equal(t, []string{"o1", "o3"}, ids(got))
}

// El repartidor u3 ve sus entregas activas más el pool PENDING de cualquier
// cliente; su pedido cancelado nunca aparece.
func TestVisible_RepartidorVeSuyosMasPool(t *testing.T) {
	got := order.Visible(testOrders(), entity.RoleDelivery, "u3", "")
	assert.Equal(t, []string{"o1", "o2", "o3"}, ids(got))
	for _, o := range got {
		assert.NotEqual(t, entity.OrderCancelled, o.Status)
	}
}

// El pedido ASSIGNED de otro repartidor no entra en la vista de u3.
func TestVisible_RepartidorNoVeAsignadosAjenos(t *testing.T) {
	got := order.Visible(testOrders(), entity.RoleDelivery, "u3", "")
	assert.NotContains(t, ids(got), "o4")
}

// Admin, jefe de estación e inspector ven toda la colección sin filtro.
func TestVisible_RolesCompletosVenTodo(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleStationManager, entity.RoleInspector} {
		got := order.Visible(testOrders(), role, "u1", "")
		assert.Equal(t, []string{"o1", "o2", "o3", "o4", "o5"}, ids(got), "rol %s", role)
	}
}

// El filtro de estado solo recorta para los roles con vista completa.
func TestVisible_FiltroDeEstado(t *testing.T) {
	got := order.Visible(testOrders(), entity.RoleAdmin, "u1", entity.OrderPending)
	assert.Equal(t, []string{"o3"}, ids(got))

	// Para el cliente el filtro no aplica: sigue viendo los suyos.
	got = order.Visible(testOrders(), entity.RoleCustomer, "u5", entity.OrderPending)
	assert.Equal(t, []string{"o1", "o3"}, ids(got))
}

// La proyección no muta la colección de entrada.
func TestVisible_NoMutaLaColeccion(t *testing.T) {
	orders := testOrders()
	_ = order.Visible(orders, entity.RoleDelivery, "u3", "")
	require.Equal(t, testOrders(), orders)
}

func TestVisible_ColeccionVacia(t *testing.T) {
	got := order.Visible(nil, entity.RoleAdmin, "u1", "")
	assert.Empty(t, got)
}
