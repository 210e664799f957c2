package repository

import "github.com/jhoicas/gasops-api/internal/domain/entity"

// AnnouncementRepository define el puerto de lectura de comunicados (DIP).
type AnnouncementRepository interface {
	List() ([]entity.Announcement, error)
}
