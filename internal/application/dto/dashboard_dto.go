package dto

import "time"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs numéricos más las distribuciones que alimentan las gráficas.
type DashboardSummaryDTO struct {
	TotalOrders       int `json:"total_orders"`
	PendingOrders     int `json:"pending_orders"`
	PendingHazards    int `json:"pending_hazards"`    // riesgos sin rectificar
	ExpiringCylinders int `json:"expiring_cylinders"` // inspección vencida a la fecha de corte

	// Distribuciones por estado; las cinco claves siempre presentes, aun en cero.
	OrdersByStatus    map[string]int `json:"orders_by_status"`
	CylindersByStatus map[string]int `json:"cylinders_by_status"`

	// Pedidos por día de los últimos siete días, el más antiguo primero.
	OrderTrend []TrendPointDTO `json:"order_trend"`

	AsOf time.Time `json:"as_of"` // fecha de corte de los cálculos
}

// TrendPointDTO un punto de la serie diaria de pedidos.
type TrendPointDTO struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Orders int    `json:"orders"`
}
