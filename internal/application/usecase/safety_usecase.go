package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/gasops-api/internal/application/dto"
	"github.com/jhoicas/gasops-api/internal/application/ports"
	"github.com/jhoicas/gasops-api/internal/domain/entity"
	"github.com/jhoicas/gasops-api/internal/domain/repository"
)

// Mensajes fijos del informe cuando no se llama (o falla) el servicio de IA.
// La falla del servicio externo nunca sale del flujo de seguridad como error.
const (
	MsgNoHazards = "No hay registros de riesgo pendientes; la situación general de seguridad es buena."
	MsgNoAPIKey  = "La clave de API no está configurada; el análisis inteligente no está disponible."
	MsgAIFailure = "El servicio de análisis IA no está disponible por el momento, intente más tarde."
)

// llmTimeout tope por llamada al LLM; las latencias externas no deben
// retener goroutines del servidor.
const llmTimeout = 10 * time.Second

// SafetyUseCase visitas de seguridad y generación del informe semanal con IA.
type SafetyUseCase struct {
	inspections repository.InspectionRepository
	llm         ports.LLMService
}

// NewSafetyUseCase construye el caso de uso inyectando el puerto LLMService.
func NewSafetyUseCase(inspections repository.InspectionRepository, llm ports.LLMService) *SafetyUseCase {
	return &SafetyUseCase{inspections: inspections, llm: llm}
}

// ListInspections devuelve todas las visitas de seguridad registradas.
func (uc *SafetyUseCase) ListInspections() (*dto.InspectionListResponse, error) {
	all, err := uc.inspections.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InspectionResponse, 0, len(all))
	for _, rec := range all {
		items = append(items, toInspectionResponse(rec))
	}
	return &dto.InspectionListResponse{Items: items, Total: len(items)}, nil
}

// GenerateAnalysis produce el informe de seguridad.
// Solo se envían al modelo los registros con riesgos (reducidos a riesgos,
// estado y notas). Si no hay riesgos la llamada se omite por completo; si la
// credencial falta o la llamada falla se responde con el mensaje fijo
// correspondiente, nunca con error.
func (uc *SafetyUseCase) GenerateAnalysis(ctx context.Context) (*dto.SafetyAnalysisDTO, error) {
	all, err := uc.inspections.List()
	if err != nil {
		return nil, err
	}

	var hazardous []ports.HazardRecordInput
	for _, rec := range all {
		if !rec.HasHazards {
			continue
		}
		hazardous = append(hazardous, ports.HazardRecordInput{
			Hazards: rec.Hazards,
			Status:  string(rec.Status),
			Notes:   rec.Notes,
		})
	}

	now := time.Now()
	if len(hazardous) == 0 {
		return &dto.SafetyAnalysisDTO{Analysis: MsgNoHazards, Fallback: true, GeneratedAt: now}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	report, err := uc.llm.GenerateSafetyReport(ctx, hazardous)
	if err != nil {
		if errors.Is(err, ports.ErrNotConfigured) {
			return &dto.SafetyAnalysisDTO{Analysis: MsgNoAPIKey, Fallback: true, GeneratedAt: now}, nil
		}
		log.Warn().Err(err).Msg("informe de seguridad IA falló, se usa mensaje fijo")
		return &dto.SafetyAnalysisDTO{Analysis: MsgAIFailure, Fallback: true, GeneratedAt: now}, nil
	}

	return &dto.SafetyAnalysisDTO{Analysis: report, GeneratedAt: now}, nil
}

func toInspectionResponse(rec entity.InspectionRecord) dto.InspectionResponse {
	hazards := rec.Hazards
	if hazards == nil {
		hazards = []string{}
	}
	return dto.InspectionResponse{
		ID:            rec.ID,
		UserID:        rec.UserID,
		UserName:      rec.UserName,
		Date:          rec.Date,
		InspectorName: rec.InspectorName,
		HasHazards:    rec.HasHazards,
		Hazards:       hazards,
		Status:        string(rec.Status),
		Notes:         rec.Notes,
	}
}
