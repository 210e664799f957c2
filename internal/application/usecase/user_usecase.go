package usecase

import (
	"github.com/jhoicas/gasops-api/internal/application/dto"
	"github.com/jhoicas/gasops-api/internal/domain/repository"
)

// UserUseCase lectura de usuarios para la gestión de personal y clientes.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List devuelve todos los usuarios registrados.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	all, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(all))
	for _, u := range all {
		items = append(items, dto.UserResponse{
			ID:      u.ID,
			Name:    u.Name,
			Role:    string(u.Role),
			Phone:   u.Phone,
			Address: u.Address,
		})
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}
