package entity

import "time"

// AnnouncementType categoría del comunicado.
type AnnouncementType string

const (
	AnnouncementNotice    AnnouncementType = "NOTICE"
	AnnouncementSafety    AnnouncementType = "SAFETY"
	AnnouncementPromotion AnnouncementType = "PROMOTION"
)

// Announcement comunicado informativo. Inmutable una vez creado.
type Announcement struct {
	ID      string
	Title   string
	Content string
	Type    AnnouncementType
	Date    time.Time
}
