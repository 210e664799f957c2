package entity

import "time"

// CylinderSpec especificación comercial del cilindro.
type CylinderSpec string

const (
	Spec5kg  CylinderSpec = "5kg"
	Spec15kg CylinderSpec = "15kg"
	Spec50kg CylinderSpec = "50kg"
)

// Valid indica si la especificación pertenece al conjunto cerrado.
func (s CylinderSpec) Valid() bool {
	switch s {
	case Spec5kg, Spec15kg, Spec50kg:
		return true
	}
	return false
}

// CylinderStatus estado físico del cilindro.
type CylinderStatus string

const (
	CylinderFull        CylinderStatus = "FULL"
	CylinderEmpty       CylinderStatus = "EMPTY"
	CylinderInUse       CylinderStatus = "IN_USE"
	CylinderMaintenance CylinderStatus = "MAINTENANCE"
	CylinderExpired     CylinderStatus = "EXPIRED"
)

// CylinderStatuses enumeración cerrada, en orden estable para conteos y tests.
var CylinderStatuses = []CylinderStatus{
	CylinderFull, CylinderEmpty, CylinderInUse, CylinderMaintenance, CylinderExpired,
}

// Cylinder representa un cilindro físico de la flota.
// Invariante: NextInspectionDate es posterior a LastInspectionDate.
// La proximidad al vencimiento no se almacena: se deriva comparando
// NextInspectionDate con la fecha de referencia (ver analytics).
type Cylinder struct {
	ID                 string
	Code               string // contenido del código QR, único
	Spec               CylinderSpec
	Status             CylinderStatus
	LastInspectionDate time.Time
	NextInspectionDate time.Time
	Location           string // texto libre: bodega, cliente, vehículo o centro
}

// InspectionDue indica si la próxima inspección ya venció respecto a la fecha
// de referencia. Comparación de calendario, nunca de cadenas.
func (c Cylinder) InspectionDue(asOf time.Time) bool {
	return c.NextInspectionDate.Before(asOf)
}
