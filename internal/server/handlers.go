package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/chart"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/view"
)

const (
	defaultImageWidth  = 800
	defaultImageHeight = 450
	maxImageSide       = 4000
)

// eventRequest is the body of POST /api/events and of websocket messages.
type eventRequest struct {
	Triggered []string         `json:"triggered"`
	State     models.ViewState `json:"state"`
}

// eventResponse carries the new state and the page update.
type eventResponse struct {
	State  models.ViewState `json:"state"`
	Update models.Update    `json:"update"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFigures(w http.ResponseWriter, _ *http.Request) {
	figures := make(map[string]models.Figure)
	for _, id := range s.dash.Registry.IDs() {
		e, _ := s.dash.Registry.Get(id)
		figures[id] = e.Figure
	}
	writeJSON(w, http.StatusOK, figures)
}

func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	e, ok := s.dash.Registry.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown chart %q", id))
		return
	}
	writeJSON(w, http.StatusOK, e.Figure)
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	page := 0
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		page = n
	}

	table, ok := s.dash.Registry.Table(id, view.DefaultPageSize)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown chart %q", id))
		return
	}
	writeJSON(w, http.StatusOK, table.Page(page))
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid event body")
		return
	}

	state, update, err := s.dash.Handler.Handle(req.State, models.Event{Triggered: req.Triggered})
	if err != nil {
		s.log.Warn("rejected event", "triggered", req.Triggered, "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, eventResponse{State: state, Update: update})
}

func (s *Server) handleChartImage(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	ext := path.Ext(file)
	id := strings.TrimSuffix(file, ext)
	e, ok := s.dash.Registry.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown chart %q", id))
		return
	}

	format, err := chart.ParseFormat(strings.TrimPrefix(ext, "."))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	width, err := sizeParam(r, "width", defaultImageWidth)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := sizeParam(r, "height", defaultImageHeight)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := chart.Render(&buf, e.Spec, format, width, height); err != nil {
		if errors.Is(err, chart.ErrNoBars) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.log.Error("rendering chart", "chart", id, "error", err)
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}

	if format == chart.FormatSVG {
		w.Header().Set("Content-Type", "image/svg+xml")
	} else {
		w.Header().Set("Content-Type", "image/png")
	}
	_, _ = w.Write(buf.Bytes())
}

// sizeParam reads a positive pixel size from the query string.
func sizeParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > maxImageSide {
		return 0, fmt.Errorf("%s must be between 1 and %d", name, maxImageSide)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
