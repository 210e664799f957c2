// Package order contiene las reglas puras del ciclo de vida del pedido:
// la máquina de estados de las transiciones y el filtro de visibilidad
// por rol. No tiene efectos secundarios ni dependencias de infraestructura.
package order

import (
	"fmt"

	"github.com/jhoicas/gasops-api/internal/domain"
	"github.com/jhoicas/gasops-api/internal/domain/entity"
)

// Action acción solicitada sobre un pedido.
type Action string

const (
	ActionAssign   Action = "ASSIGN"
	ActionDeliver  Action = "DELIVER"
	ActionComplete Action = "COMPLETE"
)

// Actions enumeración cerrada de acciones reconocidas.
var Actions = []Action{ActionAssign, ActionDeliver, ActionComplete}

// Agent identidad del repartidor que recibe la asignación.
// Se pasa explícito: el dominio no conoce la política de despacho.
type Agent struct {
	ID   string
	Name string
}

// rule precondición y efecto de una acción: solo es legal desde `from`
// ejecutada por `role`, y lleva el pedido a `to`.
type rule struct {
	from entity.OrderStatus
	role entity.Role
	to   entity.OrderStatus
}

// transitions tabla única de transiciones legales. COMPLETED y CANCELLED no
// aparecen como origen: son estados terminales. Ninguna regla produce
// CANCELLED; existe en la taxonomía sin operación que lo dispare.
var transitions = map[Action]rule{
	ActionAssign:   {from: entity.OrderPending, role: entity.RoleStationManager, to: entity.OrderAssigned},
	ActionDeliver:  {from: entity.OrderAssigned, role: entity.RoleDelivery, to: entity.OrderDelivering},
	ActionComplete: {from: entity.OrderDelivering, role: entity.RoleDelivery, to: entity.OrderCompleted},
}

// Transition aplica una acción sobre el pedido y devuelve la copia resultante.
// Si la tripleta (acción, estado, rol) no coincide exactamente con la tabla,
// devuelve ErrTransitionRejected y el pedido queda intacto; repetir la llamada
// produce el mismo rechazo. ASSIGN exige la identidad completa del repartidor.
func Transition(o entity.Order, action Action, actingRole entity.Role, agent Agent) (entity.Order, error) {
	r, ok := transitions[action]
	if !ok {
		return o, fmt.Errorf("%w: acción desconocida %q", domain.ErrTransitionRejected, action)
	}
	if o.Status != r.from || actingRole != r.role {
		return o, fmt.Errorf("%w: %s no es legal con estado %s y rol %s",
			domain.ErrTransitionRejected, action, o.Status, actingRole)
	}

	if action == ActionAssign {
		if agent.ID == "" || agent.Name == "" {
			return o, fmt.Errorf("%w: ASSIGN requiere identidad del repartidor", domain.ErrTransitionRejected)
		}
		o.DeliveryManID = agent.ID
		o.DeliveryManName = agent.Name
	}

	o.Status = r.to
	return o, nil
}
