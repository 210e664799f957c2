package repository

import "github.com/jhoicas/gasops-api/internal/domain/entity"

// CylinderRepository define el puerto de lectura de la flota de cilindros (DIP).
// La mutación de cilindros queda fuera de este núcleo: snapshot de solo lectura.
type CylinderRepository interface {
	GetByCode(code string) (*entity.Cylinder, error)
	List() ([]entity.Cylinder, error)
}
