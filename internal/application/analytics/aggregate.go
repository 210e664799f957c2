// Package analytics contiene la agregación de flota y seguridad que alimenta
// el dashboard: funciones puras sobre el snapshot, deterministas dada una
// fecha de corte explícita.
package analytics

import (
	"time"

	"github.com/jhoicas/gasops-api/internal/domain/entity"
)

// CountOrdersByStatus distribución de pedidos por estado. Los cinco estados
// aparecen siempre, en cero cuando no hay pedidos; la colección vacía es
// entrada válida.
func CountOrdersByStatus(orders []entity.Order) map[entity.OrderStatus]int {
	counts := make(map[entity.OrderStatus]int, len(entity.OrderStatuses))
	for _, s := range entity.OrderStatuses {
		counts[s] = 0
	}
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}

// CountCylindersByStatus distribución de cilindros por estado, misma forma.
func CountCylindersByStatus(cylinders []entity.Cylinder) map[entity.CylinderStatus]int {
	counts := make(map[entity.CylinderStatus]int, len(entity.CylinderStatuses))
	for _, s := range entity.CylinderStatuses {
		counts[s] = 0
	}
	for _, c := range cylinders {
		counts[c.Status]++
	}
	return counts
}

// PendingHazardCount visitas con riesgos aún sin rectificar.
func PendingHazardCount(inspections []entity.InspectionRecord) int {
	n := 0
	for _, rec := range inspections {
		if rec.HasHazards && rec.Status == entity.InspectionPendingRectification {
			n++
		}
	}
	return n
}

// ExpiringCylinders cilindros cuya próxima inspección es estrictamente
// anterior a asOf. Comparación de calendario sobre time.Time, nunca de cadenas.
func ExpiringCylinders(cylinders []entity.Cylinder, asOf time.Time) []entity.Cylinder {
	out := make([]entity.Cylinder, 0)
	for _, c := range cylinders {
		if c.InspectionDue(asOf) {
			out = append(out, c)
		}
	}
	return out
}

// OrderTrend serie diaria de pedidos creados en los `days` días que terminan
// en asOf, el día más antiguo primero.
func OrderTrend(orders []entity.Order, asOf time.Time, days int) []TrendPoint {
	if days <= 0 {
		return nil
	}
	points := make([]TrendPoint, days)
	for i := 0; i < days; i++ {
		day := asOf.AddDate(0, 0, i-days+1)
		points[i].Date = day.Format("2006-01-02")
	}
	byDate := make(map[string]*TrendPoint, days)
	for i := range points {
		byDate[points[i].Date] = &points[i]
	}
	for _, o := range orders {
		if p, ok := byDate[o.CreatedAt.Format("2006-01-02")]; ok {
			p.Orders++
		}
	}
	return points
}

// TrendPoint un día de la serie de pedidos.
type TrendPoint struct {
	Date   string
	Orders int
}
