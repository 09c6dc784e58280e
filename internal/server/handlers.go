// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pdiddy/gift-translator/internal/calculator"
	"github.com/pdiddy/gift-translator/pkg/types"
)

type translateRequest struct {
	Expression string `json:"expression"`
	Direction  string `json:"direction"`
}

type predictionsResponse struct {
	Predictions []types.Prediction      `json:"predictions"`
	Summary     types.PredictionSummary `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v before writing the status; encoding failures answer
// 500 with an error body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{Error: fmt.Sprintf("encoding response: %v", err)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, errorResponse{Error: fmt.Sprintf(format, args...)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTranslate answers with the translator's record as is, including
// failure records for malformed input.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body exceeds %d bytes", tooLarge.Limit)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	d := types.SourceToTarget
	if req.Direction != "" {
		parsed, err := types.ParseDirection(req.Direction)
		if err != nil {
			writeError(w, http.StatusBadRequest, "%v", err)
			return
		}
		d = parsed
	}

	writeJSON(w, http.StatusOK, s.tr.Translate(req.Expression, d))
}

func (s *Server) handleConstants(w http.ResponseWriter, r *http.Request) {
	all := s.tr.ListConstants()
	category := types.ConstantCategory(r.URL.Query().Get("category"))
	if category == "" {
		writeJSON(w, http.StatusOK, all)
		return
	}
	switch category {
	case types.CategoryGeometric, types.CategoryMathematical, types.CategoryDerived,
		types.CategoryPhysical, types.CategoryUnit:
	default:
		writeError(w, http.StatusBadRequest, "unknown category %q", category)
		return
	}
	filtered := make([]types.Constant, 0, len(all))
	for _, c := range all {
		if c.Category == category {
			filtered = append(filtered, c)
		}
	}
	writeJSON(w, http.StatusOK, filtered)
}

func (s *Server) handleConstant(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	c, ok := s.tr.LookupConstant(symbol)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown constant %q", symbol)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tr.ListEquationTemplates())
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tr.Examples())
}

func (s *Server) handleObservable(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var experimental *float64
	if raw := r.URL.Query().Get("experimental"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid experimental value %q", raw)
			return
		}
		experimental = &v
	}

	p, err := s.pred.Predict(key, experimental)
	switch {
	case errors.Is(err, calculator.ErrUnknownObservable):
		writeError(w, http.StatusNotFound, "%v", err)
		return
	case errors.Is(err, calculator.ErrInvalidExperimental):
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePredictions(w http.ResponseWriter, r *http.Request) {
	preds := s.pred.PredictAll()
	summary, err := calculator.Summarize(preds)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "summarizing predictions: %v", err)
		return
	}
	writeJSON(w, http.StatusOK, predictionsResponse{Predictions: preds, Summary: summary})
}
