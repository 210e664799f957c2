package memory

import (
	"github.com/jhoicas/gasops-api/internal/domain/entity"
	"github.com/jhoicas/gasops-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que los adaptadores implementan los puertos.
var (
	_ repository.OrderRepository        = (*OrderRepository)(nil)
	_ repository.CylinderRepository     = (*CylinderRepository)(nil)
	_ repository.InspectionRepository   = (*InspectionRepository)(nil)
	_ repository.UserRepository         = (*UserRepository)(nil)
	_ repository.AnnouncementRepository = (*AnnouncementRepository)(nil)
)

// OrderRepository adaptador en memoria del puerto de pedidos.
type OrderRepository struct{ store *Store }

// NewOrderRepository construye el repositorio sobre el snapshot compartido.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) Create(o *entity.Order) error { return r.store.createOrder(o) }

func (r *OrderRepository) GetByID(id string) (*entity.Order, error) { return r.store.getOrder(id) }

func (r *OrderRepository) List() ([]entity.Order, error) { return r.store.listOrders() }

func (r *OrderRepository) Transition(id string, fn func(entity.Order) (entity.Order, error)) (*entity.Order, error) {
	return r.store.transitionOrder(id, fn)
}

// CylinderRepository adaptador en memoria del puerto de cilindros.
type CylinderRepository struct{ store *Store }

// NewCylinderRepository construye el repositorio sobre el snapshot compartido.
func NewCylinderRepository(store *Store) *CylinderRepository {
	return &CylinderRepository{store: store}
}

func (r *CylinderRepository) GetByCode(code string) (*entity.Cylinder, error) {
	return r.store.getCylinderByCode(code)
}

func (r *CylinderRepository) List() ([]entity.Cylinder, error) { return r.store.listCylinders() }

// InspectionRepository adaptador en memoria del puerto de visitas de seguridad.
type InspectionRepository struct{ store *Store }

// NewInspectionRepository construye el repositorio sobre el snapshot compartido.
func NewInspectionRepository(store *Store) *InspectionRepository {
	return &InspectionRepository{store: store}
}

func (r *InspectionRepository) List() ([]entity.InspectionRecord, error) {
	return r.store.listInspections()
}

// UserRepository adaptador en memoria del puerto de usuarios.
type UserRepository struct{ store *Store }

// NewUserRepository construye el repositorio sobre el snapshot compartido.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) { return r.store.getUser(id) }

func (r *UserRepository) List() ([]entity.User, error) { return r.store.listUsers() }

// AnnouncementRepository adaptador en memoria del puerto de comunicados.
type AnnouncementRepository struct{ store *Store }

// NewAnnouncementRepository construye el repositorio sobre el snapshot compartido.
func NewAnnouncementRepository(store *Store) *AnnouncementRepository {
	return &AnnouncementRepository{store: store}
}

func (r *AnnouncementRepository) List() ([]entity.Announcement, error) {
	return r.store.listAnnouncements()
}
