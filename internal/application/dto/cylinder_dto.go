package dto

import "time"

// CylinderResponse representación de un cilindro en la API.
type CylinderResponse struct {
	ID                 string    `json:"id"`
	Code               string    `json:"code"`
	Spec               string    `json:"spec"`
	Status             string    `json:"status"`
	LastInspectionDate time.Time `json:"last_inspection_date"`
	NextInspectionDate time.Time `json:"next_inspection_date"`
	Location           string    `json:"location"`
	InspectionDue      bool      `json:"inspection_due"` // derivado contra la fecha de referencia
}

// CylinderListResponse listado de la flota.
type CylinderListResponse struct {
	Items []CylinderResponse `json:"items"`
	Total int                `json:"total"`
}
