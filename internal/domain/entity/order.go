package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del pedido dentro de su ciclo de vida.
// COMPLETED y CANCELLED son terminales: no tienen transición de salida.
// CANCELLED existe en la taxonomía pero ninguna operación lo produce.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderAssigned   OrderStatus = "ASSIGNED"
	OrderDelivering OrderStatus = "DELIVERING"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// OrderStatuses enumeración cerrada, en orden estable para conteos y tests.
var OrderStatuses = []OrderStatus{
	OrderPending, OrderAssigned, OrderDelivering, OrderCompleted, OrderCancelled,
}

// Valid indica si el estado pertenece a la enumeración.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAssigned, OrderDelivering, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order representa un pedido de entrega de cilindro.
// Invariante: DeliveryManID y DeliveryManName van juntos (ambos con valor o
// ambos vacíos) y están vacíos mientras el estado es PENDING.
type Order struct {
	ID              string
	UserID          string
	UserName        string
	Address         string
	Spec            CylinderSpec
	Quantity        int
	TotalPrice      decimal.Decimal
	Status          OrderStatus
	DeliveryManID   string
	DeliveryManName string
	CreatedAt       time.Time
	CylinderCode    string // cilindro asignado; vacío hasta el despacho
}
