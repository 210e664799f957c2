package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gasops-api/internal/application/dto"
	"github.com/jhoicas/gasops-api/internal/application/usecase"
)

// CylinderHandler maneja las peticiones HTTP para la flota (protegido).
type CylinderHandler struct {
	uc *usecase.CylinderUseCase
}

// NewCylinderHandler construye el handler.
func NewCylinderHandler(uc *usecase.CylinderUseCase) *CylinderHandler {
	return &CylinderHandler{uc: uc}
}

// List godoc
// @Summary      Listar cilindros de la flota
// @Tags         cylinders
// @Produce      json
// @Param        expiring  query  bool  false  "Solo cilindros con inspección vencida"
// @Success      200  {object}  dto.CylinderListResponse
// @Router       /api/cylinders [get]
func (h *CylinderHandler) List(c *fiber.Ctx) error {
	expiringOnly := c.QueryBool("expiring", false)
	out, err := h.uc.List(expiringOnly, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
