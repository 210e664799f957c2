package repository

import "github.com/jhoicas/gasops-api/internal/domain/entity"

// OrderRepository define el puerto de acceso a los pedidos (DIP).
// Es el único agregado mutable del snapshot.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List() ([]entity.Order, error)
	// Transition aplica fn sobre el pedido indicado de forma serializada:
	// la verificación de precondición y la escritura son atómicas por pedido,
	// y ningún otro pedido de la colección se modifica. Si fn devuelve error,
	// el pedido queda intacto y el error se propaga tal cual.
	Transition(id string, fn func(entity.Order) (entity.Order, error)) (*entity.Order, error)
}
