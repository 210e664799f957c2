package repository

import "github.com/jhoicas/gasops-api/internal/domain/entity"

// InspectionRepository define el puerto de lectura de visitas de seguridad (DIP).
type InspectionRepository interface {
	List() ([]entity.InspectionRecord, error)
}
