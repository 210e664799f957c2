package usecase

import (
	"github.com/jhoicas/gasops-api/internal/application/dto"
	"github.com/jhoicas/gasops-api/internal/domain/repository"
)

// AnnouncementUseCase lectura de comunicados de servicio.
type AnnouncementUseCase struct {
	announcements repository.AnnouncementRepository
}

// NewAnnouncementUseCase construye el caso de uso.
func NewAnnouncementUseCase(announcements repository.AnnouncementRepository) *AnnouncementUseCase {
	return &AnnouncementUseCase{announcements: announcements}
}

// List devuelve todos los comunicados publicados.
func (uc *AnnouncementUseCase) List() (*dto.AnnouncementListResponse, error) {
	all, err := uc.announcements.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AnnouncementResponse, 0, len(all))
	for _, a := range all {
		items = append(items, dto.AnnouncementResponse{
			ID:      a.ID,
			Title:   a.Title,
			Content: a.Content,
			Type:    string(a.Type),
			Date:    a.Date,
		})
	}
	return &dto.AnnouncementListResponse{Items: items, Total: len(items)}, nil
}
