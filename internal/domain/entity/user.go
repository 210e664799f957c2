package entity

// Role rol del actor en el sistema. No es una identidad verificada:
// la sesión simulada lo entrega como cabecera y una capa de auth real
// puede sustituirla sin tocar el dominio.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleStationManager Role = "STATION_MANAGER"
	RoleDelivery       Role = "DELIVERY"
	RoleInspector      Role = "INSPECTOR"
	RoleCustomer       Role = "CUSTOMER"
)

// Roles enumeración cerrada, en orden estable para tablas y tests.
var Roles = []Role{RoleAdmin, RoleStationManager, RoleDelivery, RoleInspector, RoleCustomer}

// Valid indica si el rol pertenece a la enumeración.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStationManager, RoleDelivery, RoleInspector, RoleCustomer:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID      string
	Name    string
	Role    Role
	Phone   string
	Address string // solo clientes; vacío para el personal
}
