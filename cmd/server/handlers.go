package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/breakeven-sim/simulator/internal/breakeven"
	"github.com/breakeven-sim/simulator/internal/report"
	"github.com/breakeven-sim/simulator/internal/scenario"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type sensitivityRequest struct {
	Input           breakeven.Input `json:"input"`
	CogsRangePoints *float64        `json:"cogsRangePoints,omitempty"`
	CogsStepPoints  *float64        `json:"cogsStepPoints,omitempty"`
	AOVRangePercent *float64        `json:"aovRangePercent,omitempty"`
	AOVStepPercent  *float64        `json:"aovStepPercent,omitempty"`
}

func (r sensitivityRequest) sensitivityRange() breakeven.SensitivityRange {
	rng := breakeven.DefaultSensitivityRange()
	if r.CogsRangePoints != nil {
		rng.CogsPoints = *r.CogsRangePoints
	}
	if r.CogsStepPoints != nil {
		rng.CogsStep = *r.CogsStepPoints
	}
	if r.AOVRangePercent != nil {
		rng.AOVPercent = *r.AOVRangePercent
	}
	if r.AOVStepPercent != nil {
		rng.AOVStep = *r.AOVStepPercent
	}
	return rng
}

type createScenarioRequest struct {
	Name  string          `json:"name"`
	Input breakeven.Input `json:"input"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var in breakeven.Input
	if !s.decode(w, r, &in) {
		return
	}

	res, ok := s.compute(w, in)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *server) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	var req sensitivityRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validateInput(req.Input); err != nil {
		s.writeError(w, err)
		return
	}

	out, err := breakeven.ComputeSensitivity(req.Input, req.sensitivityRange())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	list, err := s.presets.List()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	p, ok, err := s.presets.Get(key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("preset %q not found", key)})
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	list, err := s.scenarios.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *server) handleCreateScenario(w http.ResponseWriter, r *http.Request) {
	var req createScenarioRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, ok := s.compute(w, req.Input)
	if !ok {
		return
	}

	saved, err := s.scenarios.Save(r.Context(), req.Name, req.Input, res)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Info("scenario saved", zap.String("id", saved.ID), zap.String("name", saved.Name))
	s.writeJSON(w, http.StatusCreated, saved)
}

func (s *server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.loadScenario(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, sc)
}

func (s *server) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	if err := s.scenarios.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleClearScenarios(w http.ResponseWriter, r *http.Request) {
	if err := s.scenarios.Clear(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleScenarioCSV(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.loadScenario(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, sc.Result); err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(sc, "csv"))
	_, _ = w.Write(buf.Bytes())
}

func (s *server) handleScenarioText(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.loadScenario(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, report.Text(sc.Input, sc.Result))
}

func (s *server) handleExportScenario(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.loadScenario(w, r)
	if !ok {
		return
	}

	data, err := scenario.Export(sc)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", attachment(sc, "json"))
	_, _ = w.Write(data)
}

func (s *server) handleImportScenario(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "could not read request body"})
		return
	}

	imported, err := scenario.Import(data)
	if err != nil {
		s.writeError(w, err)
		return
	}

	saved, err := s.scenarios.Save(r.Context(), imported.Name, imported.Input, imported.Result)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Info("scenario imported", zap.String("id", saved.ID), zap.String("name", saved.Name))
	s.writeJSON(w, http.StatusCreated, saved)
}

func (s *server) compute(w http.ResponseWriter, in breakeven.Input) (breakeven.Result, bool) {
	if err := validateInput(in); err != nil {
		s.writeError(w, err)
		return breakeven.Result{}, false
	}

	res, err := breakeven.Compute(in)
	if err != nil {
		s.writeError(w, err)
		return breakeven.Result{}, false
	}
	return res, true
}

func (s *server) loadScenario(w http.ResponseWriter, r *http.Request) (scenario.Scenario, bool) {
	sc, err := s.scenarios.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return scenario.Scenario{}, false
	}
	return sc, true
}

func (s *server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body must be valid JSON"})
		return false
	}
	return true
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	var fe *fieldError
	var ie *breakeven.InputError

	switch {
	case errors.As(err, &fe):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fe.Error(), Field: fe.Field})
	case errors.As(err, &ie):
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: ie.Error(), Field: ie.Field})
	case errors.Is(err, scenario.ErrInvalidScenario):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, scenario.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "scenario not found"})
	case errors.Is(err, scenario.ErrLimitReached):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		s.log.Error("request failed", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response", zap.Error(err))
	}
}

func attachment(sc scenario.Scenario, ext string) string {
	return fmt.Sprintf(`attachment; filename="breakeven-%s.%s"`, sc.CreatedAt.Format("2006-01-02"), ext)
}
