package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gasops-api/internal/application/ports"
	"github.com/jhoicas/gasops-api/internal/application/usecase"
	"github.com/jhoicas/gasops-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// stubInspections repositorio fijo de visitas.
type stubInspections struct {
	records []entity.InspectionRecord
}

func (s *stubInspections) List() ([]entity.InspectionRecord, error) {
	return s.records, nil
}

// fakeLLM registra si fue invocado y responde lo configurado.
type fakeLLM struct {
	called bool
	got    []ports.HazardRecordInput
	report string
	err    error
}

func (f *fakeLLM) GenerateSafetyReport(_ context.Context, records []ports.HazardRecordInput) (string, error) {
	f.called = true
	f.got = records
	return f.report, f.err
}

func hazardFree() []entity.InspectionRecord {
	return []entity.InspectionRecord{
		{ID: "i1", HasHazards: false, Status: entity.InspectionNormal, Notes: "todo en orden"},
		{ID: "i2", HasHazards: false, Status: entity.InspectionNormal},
	}
}

func withHazards() []entity.InspectionRecord {
	return append(hazardFree(), entity.InspectionRecord{
		ID: "i3", HasHazards: true,
		Hazards: []string{"Manguera envejecida"},
		Status:  entity.InspectionPendingRectification,
		Notes:   "cambiar manguera",
		Date:    time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GenerateAnalysis
// ──────────────────────────────────────────────────────────────────────────────

// Sin riesgos no se invoca el servicio externo: mensaje fijo directo.
func TestGenerateAnalysis_SinRiesgosOmiteLlamada(t *testing.T) {
	llm := &fakeLLM{report: "no debería usarse"}
	uc := usecase.NewSafetyUseCase(&stubInspections{records: hazardFree()}, llm)

	got, err := uc.GenerateAnalysis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgNoHazards, got.Analysis)
	assert.True(t, got.Fallback)
	assert.False(t, llm.called, "el LLM no debe invocarse sin riesgos")
}

// Con riesgos se envía solo el subconjunto riesgoso, reducido a
// riesgos/estado/notas, y se devuelve el informe del modelo.
func TestGenerateAnalysis_ConRiesgosLlamaAlModelo(t *testing.T) {
	llm := &fakeLLM{report: "## Informe semanal\n- Cambiar mangueras."}
	uc := usecase.NewSafetyUseCase(&stubInspections{records: withHazards()}, llm)

	got, err := uc.GenerateAnalysis(context.Background())
	require.NoError(t, err)
	assert.True(t, llm.called)
	require.Len(t, llm.got, 1)
	assert.Equal(t, []string{"Manguera envejecida"}, llm.got[0].Hazards)
	assert.Equal(t, string(entity.InspectionPendingRectification), llm.got[0].Status)
	assert.Equal(t, "cambiar manguera", llm.got[0].Notes)
	assert.Equal(t, "## Informe semanal\n- Cambiar mangueras.", got.Analysis)
	assert.False(t, got.Fallback)
}

// Credencial ausente: mensaje fijo de "no configurado", nunca error.
func TestGenerateAnalysis_SinCredencialDegrada(t *testing.T) {
	llm := &fakeLLM{err: ports.ErrNotConfigured}
	uc := usecase.NewSafetyUseCase(&stubInspections{records: withHazards()}, llm)

	got, err := uc.GenerateAnalysis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgNoAPIKey, got.Analysis)
	assert.True(t, got.Fallback)
}

// Falla del servicio externo: mensaje fijo de indisponibilidad, nunca error.
func TestGenerateAnalysis_FallaDelServicioDegrada(t *testing.T) {
	llm := &fakeLLM{err: errors.New("AI: Gemini HTTP 500")}
	uc := usecase.NewSafetyUseCase(&stubInspections{records: withHazards()}, llm)

	got, err := uc.GenerateAnalysis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgAIFailure, got.Analysis)
	assert.True(t, got.Fallback)
}

func TestListInspections(t *testing.T) {
	uc := usecase.NewSafetyUseCase(&stubInspections{records: withHazards()}, &fakeLLM{})
	got, err := uc.ListInspections()
	require.NoError(t, err)
	assert.Equal(t, 3, got.Total)
	// Hazards nunca es null en la respuesta, aun sin riesgos.
	assert.NotNil(t, got.Items[0].Hazards)
}
