// Package authz define la tabla declarativa de capacidades por rol.
// Es la única fuente de verdad para autorización: los handlers y la capa
// de presentación consultan esta tabla en lugar de repetir condicionales.
package authz

import "github.com/jhoicas/gasops-api/internal/domain/entity"

// Capability acción o vista protegida del sistema.
type Capability string

const (
	CapViewDashboard     Capability = "view_dashboard"
	CapViewOrders        Capability = "view_orders"
	CapCreateOrder       Capability = "create_order"
	CapAssignOrder       Capability = "assign_order"
	CapDeliverOrder      Capability = "deliver_order"
	CapCompleteOrder     Capability = "complete_order"
	CapViewCylinders     Capability = "view_cylinders"
	CapViewSafety        Capability = "view_safety"
	CapGenerateAnalysis  Capability = "generate_safety_analysis"
	CapManageUsers       Capability = "manage_users"
	CapViewAnnouncements Capability = "view_announcements"
)

// Capabilities enumeración cerrada, en orden estable para tests exhaustivos.
var Capabilities = []Capability{
	CapViewDashboard, CapViewOrders, CapCreateOrder,
	CapAssignOrder, CapDeliverOrder, CapCompleteOrder,
	CapViewCylinders, CapViewSafety, CapGenerateAnalysis,
	CapManageUsers, CapViewAnnouncements,
}

// grants tabla capacidad → conjunto de roles permitidos.
var grants = map[Capability]map[entity.Role]bool{
	CapViewDashboard:     allRoles(),
	CapViewOrders:        allRoles(),
	CapViewAnnouncements: allRoles(),
	CapCreateOrder:       roles(entity.RoleAdmin, entity.RoleCustomer),
	CapAssignOrder:       roles(entity.RoleStationManager),
	CapDeliverOrder:      roles(entity.RoleDelivery),
	CapCompleteOrder:     roles(entity.RoleDelivery),
	CapViewCylinders:     roles(entity.RoleAdmin, entity.RoleStationManager, entity.RoleDelivery, entity.RoleInspector),
	CapViewSafety:        roles(entity.RoleAdmin, entity.RoleStationManager, entity.RoleDelivery, entity.RoleInspector),
	CapGenerateAnalysis:  roles(entity.RoleAdmin, entity.RoleStationManager, entity.RoleDelivery, entity.RoleInspector),
	CapManageUsers:       roles(entity.RoleAdmin, entity.RoleStationManager),
}

// Allowed indica si el rol tiene la capacidad. Capacidades desconocidas
// se niegan siempre.
func Allowed(c Capability, r entity.Role) bool {
	return grants[c][r]
}

func roles(rs ...entity.Role) map[entity.Role]bool {
	m := make(map[entity.Role]bool, len(rs))
	for _, r := range rs {
		m[r] = true
	}
	return m
}

func allRoles() map[entity.Role]bool {
	return roles(entity.Roles...)
}
