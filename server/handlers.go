package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jsphweid/harmonfunc/analysis"
	"github.com/jsphweid/harmonfunc/harmony"
	"github.com/jsphweid/harmonfunc/logger"
	"github.com/jsphweid/harmonfunc/midi"
	"github.com/jsphweid/harmonfunc/model"
	"github.com/jsphweid/harmonfunc/pitch"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Could not encode response", logger.Fields{"error": err.Error()})
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// statusFor maps input errors to 400 and everything else to 500.
func statusFor(err error) int {
	if errors.Is(err, harmony.ErrNonsensicalInput) || errors.Is(err, pitch.ErrInvalidPitch) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) key(name string) (pitch.Key, error) {
	if name == "" {
		name = s.cfg.DefaultKey
	}
	k, err := pitch.ParseKey(name)
	if err != nil {
		return pitch.Key{}, fmt.Errorf("%w: bad key %q", harmony.ErrNonsensicalInput, name)
	}
	return k, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleLabel(w http.ResponseWriter, r *http.Request) {
	var input model.LabelRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}

	k, err := s.key(input.Key)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if input.Verbosity == "" {
		input.Verbosity = s.cfg.DefaultVerbosity
	}
	verbosity, err := harmony.ParseVerbosity(input.Verbosity)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var pitches []pitch.Pitch
	switch {
	case len(input.Pitches) > 0 && len(input.Notes) > 0:
		writeError(w, http.StatusBadRequest, errors.New("send pitches or notes, not both"))
		return
	case len(input.Pitches) > 0:
		pitches, err = pitch.ParseAll(input.Pitches)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	default:
		for _, n := range input.Notes {
			pitches = append(pitches, pitch.FromMIDI(int(n), k))
		}
	}

	res, err := describe(k, pitches, verbosity)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func describe(k pitch.Key, pitches []pitch.Pitch, v harmony.Verbosity) (model.LabelResponse, error) {
	fc, err := harmony.Analyze(k, pitches)
	if err != nil {
		return model.LabelResponse{}, err
	}

	lc, err := analysis.LabelPitches(k, pitches)
	if err != nil {
		return model.LabelResponse{}, err
	}

	res := model.LabelResponse{Label: fc.Render(v), Degrees: lc.Degrees}
	// chord notes run low to high like the sorted pitches
	for i, n := range fc.Notes() {
		res.Notes = append(res.Notes, model.NoteDetail{
			Pitch:    lc.Pitches[i],
			Degree:   n.Degree(),
			Key:      n.Key().Name(),
			Function: n.Function().String(),
			Role:     n.Role().String(),
			Label:    n.Label(),
		})
	}
	return res, nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	k, err := s.key(q.Get("key"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	store := false
	if raw := q.Get("store"); raw != "" {
		store, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("bad store flag %q", raw))
			return
		}
	}
	if store && s.cfg.Store == nil {
		writeError(w, http.StatusBadRequest, errors.New("storage is not configured"))
		return
	}

	mf, err := midi.Read(http.MaxBytesReader(w, r.Body, maxMidiBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	source := q.Get("source")
	if source == "" {
		source = "upload"
	}
	a, err := analysis.AnalyzeSMF(r.Context(), mf, k, source, uuid.NewString(), s.cfg.Workers)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	if store {
		if err := s.cfg.Store.PutAnalysis(a); err != nil {
			logger.Error("Could not store analysis", err, logger.Fields{"id": a.ID})
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, model.AnalyzeResponse{ID: a.ID, Key: a.Key, Chords: a.Chords})
}
