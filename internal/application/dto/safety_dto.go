package dto

import "time"

// InspectionResponse representación de una visita de seguridad en la API.
type InspectionResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Date          time.Time `json:"date"`
	InspectorName string    `json:"inspector_name"`
	HasHazards    bool      `json:"has_hazards"`
	Hazards       []string  `json:"hazards"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
}

// InspectionListResponse listado de visitas de seguridad.
type InspectionListResponse struct {
	Items []InspectionResponse `json:"items"`
	Total int                  `json:"total"`
}

// SafetyAnalysisDTO resultado del informe de seguridad. Cuando el servicio
// de IA no está disponible, Analysis contiene un mensaje fijo y Fallback es true.
type SafetyAnalysisDTO struct {
	Analysis    string    `json:"analysis"`
	Fallback    bool      `json:"fallback"`
	GeneratedAt time.Time `json:"generated_at"`
}
