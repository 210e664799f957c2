package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gasops-api/internal/application/dto"
	"github.com/jhoicas/gasops-api/internal/application/usecase"
)

// SafetyHandler maneja las peticiones HTTP de gestión de seguridad (protegido).
type SafetyHandler struct {
	uc *usecase.SafetyUseCase
}

// NewSafetyHandler construye el handler.
func NewSafetyHandler(uc *usecase.SafetyUseCase) *SafetyHandler {
	return &SafetyHandler{uc: uc}
}

// ListInspections godoc
// @Summary      Listar visitas de seguridad
// @Tags         safety
// @Produce      json
// @Success      200  {object}  dto.InspectionListResponse
// @Router       /api/safety/inspections [get]
func (h *SafetyHandler) ListInspections(c *fiber.Ctx) error {
	out, err := h.uc.ListInspections()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GenerateAnalysis godoc
// @Summary      Generar informe de seguridad con IA
// @Description  Si no hay riesgos, la credencial falta o el servicio falla, responde 200 con el mensaje fijo correspondiente.
// @Tags         safety
// @Produce      json
// @Success      200  {object}  dto.SafetyAnalysisDTO
// @Router       /api/safety/analysis [post]
func (h *SafetyHandler) GenerateAnalysis(c *fiber.Ctx) error {
	out, err := h.uc.GenerateAnalysis(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
