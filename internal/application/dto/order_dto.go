package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest alta de pedido. Address vacío usa la dirección
// registrada del actor.
type CreateOrderRequest struct {
	Spec     string `json:"spec"`
	Quantity int    `json:"quantity"`
	Address  string `json:"address,omitempty"`
}

// AssignOrderRequest asignación de repartidor. Si se omite el agente se usa
// el repartidor por defecto de la estación.
type AssignOrderRequest struct {
	AgentID   string `json:"agent_id,omitempty"`
	AgentName string `json:"agent_name,omitempty"`
}

// OrderResponse representación de un pedido en la API.
type OrderResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	UserName        string          `json:"user_name"`
	Address         string          `json:"address"`
	Spec            string          `json:"spec"`
	Quantity        int             `json:"quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          string          `json:"status"`
	DeliveryManID   string          `json:"delivery_man_id,omitempty"`
	DeliveryManName string          `json:"delivery_man_name,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	CylinderCode    string          `json:"cylinder_code,omitempty"`
}

// OrderListResponse listado de pedidos visibles para el actor.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}
