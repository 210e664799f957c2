package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gasops-api/internal/application/analytics"
	"github.com/jhoicas/gasops-api/internal/application/usecase"
	"github.com/jhoicas/gasops-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC        *usecase.OrderUseCase
	CylinderUC     *usecase.CylinderUseCase
	SafetyUC       *usecase.SafetyUseCase
	UserUC         *usecase.UserUseCase
	AnnouncementUC *usecase.AnnouncementUseCase
	DashboardUC    *analytics.DashboardUseCase
}

// Router registra las rutas de la API. Todas las rutas bajo /api exigen la
// identidad simulada del actor; cada una declara su capacidad de la tabla authz.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", ActorMiddleware())

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", RequireCapability(authz.CapViewDashboard), dashboardHandler.Summary)

	// Pedidos
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", RequireCapability(authz.CapViewOrders), orderHandler.List)
	orders.Post("/", RequireCapability(authz.CapCreateOrder), orderHandler.Create)
	orders.Post("/:id/assign", RequireCapability(authz.CapAssignOrder), orderHandler.Assign)
	orders.Post("/:id/deliver", RequireCapability(authz.CapDeliverOrder), orderHandler.Deliver)
	orders.Post("/:id/complete", RequireCapability(authz.CapCompleteOrder), orderHandler.Complete)

	// Flota de cilindros
	cylinders := api.Group("/cylinders")
	cylinderHandler := NewCylinderHandler(deps.CylinderUC)
	cylinders.Get("/", RequireCapability(authz.CapViewCylinders), cylinderHandler.List)

	// Gestión de seguridad
	safety := api.Group("/safety")
	safetyHandler := NewSafetyHandler(deps.SafetyUC)
	safety.Get("/inspections", RequireCapability(authz.CapViewSafety), safetyHandler.ListInspections)
	safety.Post("/analysis", RequireCapability(authz.CapGenerateAnalysis), safetyHandler.GenerateAnalysis)

	// Usuarios
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequireCapability(authz.CapManageUsers), userHandler.List)

	// Comunicados
	announcements := api.Group("/announcements")
	announcementHandler := NewAnnouncementHandler(deps.AnnouncementUC)
	announcements.Get("/", RequireCapability(authz.CapViewAnnouncements), announcementHandler.List)
}
