package repository

import "github.com/jhoicas/gasops-api/internal/domain/entity"

// UserRepository define el puerto de lectura de usuarios (DIP).
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	List() ([]entity.User, error)
}
