package usecase

import (
	"time"

	"github.com/jhoicas/gasops-api/internal/application/dto"
	"github.com/jhoicas/gasops-api/internal/domain/entity"
	"github.com/jhoicas/gasops-api/internal/domain/repository"
)

// CylinderUseCase lectura de la flota de cilindros.
type CylinderUseCase struct {
	cylinders repository.CylinderRepository
}

// NewCylinderUseCase construye el caso de uso.
func NewCylinderUseCase(cylinders repository.CylinderRepository) *CylinderUseCase {
	return &CylinderUseCase{cylinders: cylinders}
}

// List devuelve la flota; con expiringOnly solo los cilindros con inspección
// vencida respecto a asOf. asOf explícito para que el corte sea determinista.
func (uc *CylinderUseCase) List(expiringOnly bool, asOf time.Time) (*dto.CylinderListResponse, error) {
	all, err := uc.cylinders.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CylinderResponse, 0, len(all))
	for _, c := range all {
		if expiringOnly && !c.InspectionDue(asOf) {
			continue
		}
		items = append(items, toCylinderResponse(c, asOf))
	}
	return &dto.CylinderListResponse{Items: items, Total: len(items)}, nil
}

func toCylinderResponse(c entity.Cylinder, asOf time.Time) dto.CylinderResponse {
	return dto.CylinderResponse{
		ID:                 c.ID,
		Code:               c.Code,
		Spec:               string(c.Spec),
		Status:             string(c.Status),
		LastInspectionDate: c.LastInspectionDate,
		NextInspectionDate: c.NextInspectionDate,
		Location:           c.Location,
		InspectionDue:      c.InspectionDue(asOf),
	}
}
