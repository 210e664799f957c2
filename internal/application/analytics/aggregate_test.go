package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gasops-api/internal/application/analytics"
	"github.com/jhoicas/gasops-api/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// La colección vacía es entrada válida: los cinco estados en cero.
func TestCountOrdersByStatus_Vacio(t *testing.T) {
	got := analytics.CountOrdersByStatus(nil)
	require.Len(t, got, 5)
	for _, s := range entity.OrderStatuses {
		assert.Equal(t, 0, got[s], "estado %s", s)
	}
}

func TestCountOrdersByStatus_Conteos(t *testing.T) {
	orders := []entity.Order{
		{ID: "o1", Status: entity.OrderPending},
		{ID: "o2", Status: entity.OrderPending},
		{ID: "o3", Status: entity.OrderCompleted},
	}
	got := analytics.CountOrdersByStatus(orders)
	assert.Equal(t, 2, got[entity.OrderPending])
	assert.Equal(t, 1, got[entity.OrderCompleted])
	assert.Equal(t, 0, got[entity.OrderAssigned])
	assert.Equal(t, 0, got[entity.OrderDelivering])
	assert.Equal(t, 0, got[entity.OrderCancelled])
}

func TestCountCylindersByStatus_Vacio(t *testing.T) {
	got := analytics.CountCylindersByStatus(nil)
	require.Len(t, got, 5)
	for _, s := range entity.CylinderStatuses {
		assert.Equal(t, 0, got[s], "estado %s", s)
	}
}

// Solo cuentan las visitas con riesgos y estado PENDING_RECTIFICATION.
func TestPendingHazardCount(t *testing.T) {
	inspections := []entity.InspectionRecord{
		{ID: "i1", HasHazards: false, Status: entity.InspectionNormal},
		{ID: "i2", HasHazards: true, Status: entity.InspectionPendingRectification},
		{ID: "i3", HasHazards: true, Status: entity.InspectionRectified},
	}
	assert.Equal(t, 1, analytics.PendingHazardCount(inspections))
	assert.Equal(t, 0, analytics.PendingHazardCount(nil))
}

// Comparación de calendario estricta: antes de asOf entra, después no.
func TestExpiringCylinders_CorteDeCalendario(t *testing.T) {
	asOf := day(2024, 1, 1)
	cylinders := []entity.Cylinder{
		{ID: "c5", NextInspectionDate: day(2023, 1, 1)},
		{ID: "c1", NextInspectionDate: day(2027, 1, 1)},
		{ID: "c9", NextInspectionDate: day(2024, 1, 1)}, // igual a asOf: no vence aún
	}
	got := analytics.ExpiringCylinders(cylinders, asOf)
	require.Len(t, got, 1)
	assert.Equal(t, "c5", got[0].ID)
}

func TestExpiringCylinders_Vacio(t *testing.T) {
	assert.Empty(t, analytics.ExpiringCylinders(nil, day(2024, 1, 1)))
}

// La serie diaria cubre exactamente los días pedidos, el más antiguo primero,
// y solo cuenta pedidos creados dentro de la ventana.
func TestOrderTrend_VentanaDeSieteDias(t *testing.T) {
	asOf := day(2023, 10, 26)
	orders := []entity.Order{
		{ID: "o1", CreatedAt: time.Date(2023, 10, 25, 10, 30, 0, 0, time.UTC)},
		{ID: "o2", CreatedAt: time.Date(2023, 10, 26, 9, 15, 0, 0, time.UTC)},
		{ID: "o3", CreatedAt: time.Date(2023, 10, 26, 14, 20, 0, 0, time.UTC)},
		{ID: "o4", CreatedAt: day(2023, 9, 1)}, // fuera de la ventana
	}
	got := analytics.OrderTrend(orders, asOf, 7)
	require.Len(t, got, 7)
	assert.Equal(t, "2023-10-20", got[0].Date)
	assert.Equal(t, "2023-10-26", got[6].Date)
	assert.Equal(t, 1, got[5].Orders) // 25 de octubre
	assert.Equal(t, 2, got[6].Orders) // 26 de octubre
	total := 0
	for _, p := range got {
		total += p.Orders
	}
	assert.Equal(t, 3, total)
}
