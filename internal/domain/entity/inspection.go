package entity

import "time"

// InspectionStatus estado de remediación de una visita de seguridad.
type InspectionStatus string

const (
	InspectionPendingRectification InspectionStatus = "PENDING_RECTIFICATION"
	InspectionRectified            InspectionStatus = "RECTIFIED"
	InspectionNormal               InspectionStatus = "NORMAL"
)

// InspectionRecord resultado de una visita de seguridad domiciliaria.
// Invariantes: HasHazards es true si y solo si Hazards no está vacío;
// Status es NORMAL solo cuando HasHazards es false.
type InspectionRecord struct {
	ID            string
	UserID        string
	UserName      string
	Date          time.Time
	InspectorName string
	HasHazards    bool
	Hazards       []string // ej: "manguera envejecida", "ventilación deficiente"
	Status        InspectionStatus
	Notes         string
}
