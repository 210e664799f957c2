package order

import "github.com/jhoicas/gasops-api/internal/domain/entity"

// Visible proyecta los pedidos que el actor puede ver. Proyección pura:
// no modifica la colección y conserva el orden relativo original.
//
//   - Cliente: solo sus propios pedidos (UserID == actorID).
//   - Repartidor: pedidos no cancelados que le pertenecen, más el pool PENDING
//     sin reclamar (de cualquier cliente).
//   - Admin, jefe de estación e inspector: todos los pedidos; statusFilter
//     vacío significa sin recorte.
func Visible(orders []entity.Order, actingRole entity.Role, actorID string, statusFilter entity.OrderStatus) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if visibleTo(o, actingRole, actorID, statusFilter) {
			out = append(out, o)
		}
	}
	return out
}

func visibleTo(o entity.Order, actingRole entity.Role, actorID string, statusFilter entity.OrderStatus) bool {
	switch actingRole {
	case entity.RoleCustomer:
		return o.UserID == actorID
	case entity.RoleDelivery:
		if o.Status == entity.OrderCancelled {
			return false
		}
		return o.DeliveryManID == actorID || o.Status == entity.OrderPending
	default:
		return statusFilter == "" || o.Status == statusFilter
	}
}
