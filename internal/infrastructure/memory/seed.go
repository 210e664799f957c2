package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gasops-api/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seed carga los datos de demostración de la estación.
// u3 es el repartidor por defecto del despacho; u5 y u6 son clientes.
func (s *Store) seed() {
	s.users = []entity.User{
		{ID: "u1", Name: "Carlos Mendoza", Role: entity.RoleAdmin, Phone: "3100000001"},
		{ID: "u2", Name: "Lucía Ramírez", Role: entity.RoleStationManager, Phone: "3100000002"},
		{ID: "u3", Name: "Pedro Fuentes", Role: entity.RoleDelivery, Phone: "3100000003"},
		{ID: "u4", Name: "Ana Torres", Role: entity.RoleInspector, Phone: "3100000004"},
		{ID: "u5", Name: "Rosa Delgado", Role: entity.RoleCustomer, Phone: "3200000001", Address: "Conjunto La Felicidad, Torre 3, Apto 201"},
		{ID: "u6", Name: "Miguel Soto", Role: entity.RoleCustomer, Phone: "3200000002", Address: "Jardines del Sol, Torre 5, Apto 502"},
	}

	s.cylinders = []entity.Cylinder{
		{ID: "c1", Code: "GP-2023001", Spec: entity.Spec15kg, Status: entity.CylinderFull,
			LastInspectionDate: date(2023, 1, 1), NextInspectionDate: date(2027, 1, 1), Location: "Bodega central"},
		{ID: "c2", Code: "GP-2023002", Spec: entity.Spec15kg, Status: entity.CylinderInUse,
			LastInspectionDate: date(2023, 2, 1), NextInspectionDate: date(2027, 2, 1), Location: "Cliente: Rosa Delgado"},
		{ID: "c3", Code: "GP-2023003", Spec: entity.Spec50kg, Status: entity.CylinderEmpty,
			LastInspectionDate: date(2022, 5, 1), NextInspectionDate: date(2026, 5, 1), Location: "Vehículo: Pedro Fuentes"},
		{ID: "c4", Code: "GP-2020099", Spec: entity.Spec15kg, Status: entity.CylinderMaintenance,
			LastInspectionDate: date(2020, 1, 1), NextInspectionDate: date(2024, 1, 1), Location: "Centro de mantenimiento"},
		{ID: "c5", Code: "GP-2019055", Spec: entity.Spec5kg, Status: entity.CylinderExpired,
			LastInspectionDate: date(2019, 1, 1), NextInspectionDate: date(2023, 1, 1), Location: "Zona de baja"},
	}

	s.orders = []entity.Order{
		{ID: "o1", UserID: "u5", UserName: "Rosa Delgado", Address: "Conjunto La Felicidad, Torre 3, Apto 201",
			Spec: entity.Spec15kg, Quantity: 1, TotalPrice: decimal.NewFromInt(120),
			Status: entity.OrderCompleted, DeliveryManID: "u3", DeliveryManName: "Pedro Fuentes",
			CreatedAt: time.Date(2023, 10, 25, 10, 30, 0, 0, time.UTC), CylinderCode: "GP-2023002"},
		{ID: "o2", UserID: "u6", UserName: "Miguel Soto", Address: "Jardines del Sol, Torre 5, Apto 502",
			Spec: entity.Spec15kg, Quantity: 1, TotalPrice: decimal.NewFromInt(120),
			Status: entity.OrderDelivering, DeliveryManID: "u3", DeliveryManName: "Pedro Fuentes",
			CreatedAt: time.Date(2023, 10, 26, 9, 15, 0, 0, time.UTC), CylinderCode: "GP-2023001"},
		{ID: "o3", UserID: "u5", UserName: "Rosa Delgado", Address: "Conjunto La Felicidad, Torre 3, Apto 201",
			Spec: entity.Spec5kg, Quantity: 2, TotalPrice: decimal.NewFromInt(100),
			Status: entity.OrderPending,
			CreatedAt: time.Date(2023, 10, 26, 14, 20, 0, 0, time.UTC)},
	}

	s.inspections = []entity.InspectionRecord{
		{ID: "i1", UserID: "u5", UserName: "Rosa Delgado", Date: date(2023, 10, 1),
			InspectorName: "Ana Torres", HasHazards: false, Hazards: nil,
			Status: entity.InspectionNormal,
			Notes:  "Ambiente de uso en buen estado, ventilación adecuada."},
		{ID: "i2", UserID: "u6", UserName: "Miguel Soto", Date: date(2023, 10, 15),
			InspectorName: "Ana Torres", HasHazards: true,
			Hazards: []string{"Manguera envejecida", "Sin detector de gas instalado"},
			Status:  entity.InspectionPendingRectification,
			Notes:   "Se informó al cliente que debe cambiar la manguera; se recomendó instalar detector."},
	}

	s.announcements = []entity.Announcement{
		{ID: "a1", Title: "Recomendaciones para el uso seguro del gas en invierno",
			Content: "Con puertas y ventanas cerradas, mantenga la ventilación al usar gas para prevenir intoxicación por monóxido de carbono.",
			Type:    entity.AnnouncementSafety, Date: date(2023, 11, 1)},
		{ID: "a2", Title: "Aviso de mantenimiento del sistema",
			Content: "El sistema estará fuera de servicio este sábado a las 02:00 por mantenimiento programado, duración estimada de 2 horas.",
			Type:    entity.AnnouncementNotice, Date: date(2023, 11, 5)},
	}
}
