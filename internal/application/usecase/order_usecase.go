package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gasops-api/internal/application/dto"
	"github.com/jhoicas/gasops-api/internal/domain"
	"github.com/jhoicas/gasops-api/internal/domain/entity"
	"github.com/jhoicas/gasops-api/internal/domain/order"
	"github.com/jhoicas/gasops-api/internal/domain/repository"
)

// unitPrices precio de venta por especificación.
var unitPrices = map[entity.CylinderSpec]decimal.Decimal{
	entity.Spec5kg:  decimal.NewFromInt(50),
	entity.Spec15kg: decimal.NewFromInt(120),
	entity.Spec50kg: decimal.NewFromInt(400),
}

// OrderUseCase casos de uso sobre pedidos: alta, listado visible por rol y
// transiciones del ciclo de vida. Las reglas viven en internal/domain/order;
// aquí solo se orquesta contra el repositorio.
type OrderUseCase struct {
	orders       repository.OrderRepository
	users        repository.UserRepository
	defaultAgent order.Agent
}

// NewOrderUseCase construye el caso de uso. defaultAgent es el repartidor de
// despacho cuando la asignación no trae uno explícito.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository, defaultAgent order.Agent) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, defaultAgent: defaultAgent}
}

// List devuelve los pedidos visibles para el actor según su rol.
// statusFilter solo recorta para los roles que ven toda la colección.
func (uc *OrderUseCase) List(actingRole entity.Role, actorID string, statusFilter entity.OrderStatus) (*dto.OrderListResponse, error) {
	all, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	visible := order.Visible(all, actingRole, actorID, statusFilter)
	items := make([]dto.OrderResponse, 0, len(visible))
	for _, o := range visible {
		items = append(items, *toOrderResponse(&o))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}, nil
}

// Create registra un pedido PENDING a nombre del actor. El precio se calcula
// con la tarifa vigente por especificación.
func (uc *OrderUseCase) Create(actorID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	spec := entity.CylinderSpec(in.Spec)
	if !spec.Valid() {
		return nil, fmt.Errorf("%w: especificación %q", domain.ErrInvalidInput, in.Spec)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	user, err := uc.users.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	address := in.Address
	if address == "" {
		address = user.Address
	}
	if address == "" {
		return nil, fmt.Errorf("%w: dirección de entrega requerida", domain.ErrInvalidInput)
	}

	o := &entity.Order{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		UserName:   user.Name,
		Address:    address,
		Spec:       spec,
		Quantity:   in.Quantity,
		TotalPrice: unitPrices[spec].Mul(decimal.NewFromInt(int64(in.Quantity))),
		Status:     entity.OrderPending,
		CreatedAt:  time.Now(),
	}
	if err := uc.orders.Create(o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Transition ejecuta una acción del ciclo de vida sobre el pedido indicado.
// Para ASSIGN sin agente explícito se usa el repartidor por defecto de la
// estación. Una tripleta ilegal devuelve domain.ErrTransitionRejected y deja
// el pedido intacto.
func (uc *OrderUseCase) Transition(id string, action order.Action, actingRole entity.Role, agent order.Agent) (*dto.OrderResponse, error) {
	if action == order.ActionAssign && agent.ID == "" {
		agent = uc.defaultAgent
	}
	updated, err := uc.orders.Transition(id, func(o entity.Order) (entity.Order, error) {
		return order.Transition(o, action, actingRole, agent)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		UserName:        o.UserName,
		Address:         o.Address,
		Spec:            string(o.Spec),
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
		Status:          string(o.Status),
		DeliveryManID:   o.DeliveryManID,
		DeliveryManName: o.DeliveryManName,
		CreatedAt:       o.CreatedAt,
		CylinderCode:    o.CylinderCode,
	}
}
