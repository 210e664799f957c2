// Package memory implementa los puertos de repositorio sobre un snapshot
// en memoria. No hay capa de persistencia: el snapshot vive en el proceso
// y solo la colección de pedidos es mutable, siempre bajo el mutex del
// Store para que la precondición y la escritura de una transición sean
// atómicas por pedido.
package memory

import (
	"sync"

	"github.com/jhoicas/gasops-api/internal/domain"
	"github.com/jhoicas/gasops-api/internal/domain/entity"
)

// Store snapshot completo del estado del sistema.
type Store struct {
	mu            sync.RWMutex
	orders        []entity.Order
	cylinders     []entity.Cylinder
	inspections   []entity.InspectionRecord
	users         []entity.User
	announcements []entity.Announcement
}

// NewStore crea un snapshot vacío.
func NewStore() *Store {
	return &Store{}
}

// NewSeededStore crea el snapshot con los datos de demostración.
func NewSeededStore() *Store {
	s := NewStore()
	s.seed()
	return s
}

// ── Pedidos (colección mutable) ───────────────────────────────────────────────

func (s *Store) createOrder(o *entity.Order) error {
	if o == nil || o.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, *o)
	return nil
}

func (s *Store) getOrder(id string) (*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (s *Store) listOrders() ([]entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// transitionOrder aplica fn sobre el pedido indicado bajo el lock de escritura,
// de modo que dos transiciones concurrentes sobre el mismo pedido no puedan
// pasar ambas la precondición. Si fn falla, la colección no cambia.
func (s *Store) transitionOrder(id string, fn func(entity.Order) (entity.Order, error)) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		updated, err := fn(s.orders[i])
		if err != nil {
			return nil, err
		}
		s.orders[i] = updated
		o := updated
		return &o, nil
	}
	return nil, domain.ErrNotFound
}

// ── Colecciones de solo lectura ───────────────────────────────────────────────

func (s *Store) listCylinders() ([]entity.Cylinder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Cylinder, len(s.cylinders))
	copy(out, s.cylinders)
	return out, nil
}

func (s *Store) getCylinderByCode(code string) (*entity.Cylinder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.cylinders {
		if s.cylinders[i].Code == code {
			c := s.cylinders[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (s *Store) listInspections() ([]entity.InspectionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.InspectionRecord, len(s.inspections))
	copy(out, s.inspections)
	return out, nil
}

func (s *Store) listUsers() ([]entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *Store) getUser(id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) listAnnouncements() ([]entity.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Announcement, len(s.announcements))
	copy(out, s.announcements)
	return out, nil
}
