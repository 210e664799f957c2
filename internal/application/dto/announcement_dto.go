package dto

import "time"

// AnnouncementResponse representación de un comunicado en la API.
type AnnouncementResponse struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Type    string    `json:"type"`
	Date    time.Time `json:"date"`
}

// AnnouncementListResponse listado de comunicados.
type AnnouncementListResponse struct {
	Items []AnnouncementResponse `json:"items"`
	Total int                    `json:"total"`
}
