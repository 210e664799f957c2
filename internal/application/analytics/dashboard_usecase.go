package analytics

import (
	"fmt"
	"time"

	"github.com/jhoicas/gasops-api/internal/application/dto"
	"github.com/jhoicas/gasops-api/internal/domain/entity"
	"github.com/jhoicas/gasops-api/internal/domain/repository"
)

const trendDays = 7 // días de la serie de pedidos del dashboard

// DashboardUseCase genera el resumen operativo de la estación.
//
// Fuente de datos: los repositorios de solo lectura del snapshot. Los cálculos
// son funciones puras de este paquete; asOf es la fecha de corte explícita
// para que vencimientos y serie diaria sean deterministas.
type DashboardUseCase struct {
	orders      repository.OrderRepository
	cylinders   repository.CylinderRepository
	inspections repository.InspectionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	orders repository.OrderRepository,
	cylinders repository.CylinderRepository,
	inspections repository.InspectionRepository,
) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, cylinders: cylinders, inspections: inspections}
}

// GetSummary construye el DashboardSummaryDTO con corte en asOf.
//
// Tres lecturas en paralelo:
//  1. pedidos      → totales, distribución y serie diaria
//  2. cilindros    → distribución y vencidos
//  3. inspecciones → riesgos sin rectificar
func (uc *DashboardUseCase) GetSummary(asOf time.Time) (*dto.DashboardSummaryDTO, error) {
	type ordersResult struct {
		orders []entity.Order
		err    error
	}
	type cylindersResult struct {
		cylinders []entity.Cylinder
		err       error
	}
	type inspectionsResult struct {
		inspections []entity.InspectionRecord
		err         error
	}

	ordersCh := make(chan ordersResult, 1)
	cylindersCh := make(chan cylindersResult, 1)
	inspectionsCh := make(chan inspectionsResult, 1)

	go func() {
		list, err := uc.orders.List()
		ordersCh <- ordersResult{list, err}
	}()
	go func() {
		list, err := uc.cylinders.List()
		cylindersCh <- cylindersResult{list, err}
	}()
	go func() {
		list, err := uc.inspections.List()
		inspectionsCh <- inspectionsResult{list, err}
	}()

	ord := <-ordersCh
	cyl := <-cylindersCh
	ins := <-inspectionsCh

	if ord.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos: %w", ord.err)
	}
	if cyl.err != nil {
		return nil, fmt.Errorf("dashboard: cilindros: %w", cyl.err)
	}
	if ins.err != nil {
		return nil, fmt.Errorf("dashboard: inspecciones: %w", ins.err)
	}

	orderCounts := CountOrdersByStatus(ord.orders)
	cylinderCounts := CountCylindersByStatus(cyl.cylinders)

	trend := make([]dto.TrendPointDTO, 0, trendDays)
	for _, p := range OrderTrend(ord.orders, asOf, trendDays) {
		trend = append(trend, dto.TrendPointDTO{Date: p.Date, Orders: p.Orders})
	}

	return &dto.DashboardSummaryDTO{
		TotalOrders:       len(ord.orders),
		PendingOrders:     orderCounts[entity.OrderPending],
		PendingHazards:    PendingHazardCount(ins.inspections),
		ExpiringCylinders: len(ExpiringCylinders(cyl.cylinders, asOf)),
		OrdersByStatus:    statusKeys(orderCounts),
		CylindersByStatus: cylinderKeys(cylinderCounts),
		OrderTrend:        trend,
		AsOf:              asOf,
	}, nil
}

func statusKeys(in map[entity.OrderStatus]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func cylinderKeys(in map[entity.CylinderStatus]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}
