package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gasops-api/internal/application/dto"
	"github.com/jhoicas/gasops-api/internal/domain/authz"
	"github.com/jhoicas/gasops-api/internal/domain/entity"
)

// Cabeceras de la sesión simulada. El rol NO es una identidad verificada:
// reemplazar este middleware es el punto de enganche para una capa de auth real.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Locals keys para la identidad del actor en Fiber.
const (
	LocalActorID   = "actor_id"
	LocalActorRole = "actor_role"
)

// ActorMiddleware valida las cabeceras del actor y las carga en c.Locals.
func ActorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID := strings.TrimSpace(c.Get(HeaderActorID))
		if actorID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ACTOR", Message: "cabecera " + HeaderActorID + " requerida"})
		}
		role := entity.Role(strings.ToUpper(strings.TrimSpace(c.Get(HeaderActorRole))))
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "cabecera " + HeaderActorRole + " requerida"})
		}
		if !role.Valid() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "rol desconocido: " + string(role)})
		}
		c.Locals(LocalActorID, actorID)
		c.Locals(LocalActorRole, role)
		return c.Next()
	}
}

// RequireCapability devuelve un middleware que consulta la tabla de
// capacidades. Debe usarse DESPUÉS de ActorMiddleware (necesita LocalActorRole).
// Rol sin la capacidad → 403; la tabla es la única fuente de verdad.
func RequireCapability(cap authz.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetActorRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ACTOR", Message: "actor no presente en el contexto"})
		}
		if !authz.Allowed(cap, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol " + string(role) + " no tiene la capacidad " + string(cap)})
		}
		return c.Next()
	}
}

// GetActorID devuelve el ID del actor del contexto (después de ActorMiddleware).
func GetActorID(c *fiber.Ctx) string {
	v := c.Locals(LocalActorID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetActorRole devuelve el rol del actor del contexto (después de ActorMiddleware).
func GetActorRole(c *fiber.Ctx) entity.Role {
	v := c.Locals(LocalActorRole)
	if v == nil {
		return ""
	}
	r, _ := v.(entity.Role)
	return r
}
