package server

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/view"
)

//go:embed templates/index.html
var templateFS embed.FS

// pageTitle is the dashboard heading.
const pageTitle = "Dashboard Summary 6/30/24"

type pageChart struct {
	ID      string
	Trigger string
	Label   string
}

type pageData struct {
	Title        string
	Charts       []pageChart
	Figures      template.JS
	CloseTrigger string
}

func parsePage() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/index.html")
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	ids := s.dash.Registry.IDs()

	data := pageData{
		Title:        pageTitle,
		CloseTrigger: view.TriggerClose,
	}
	figures := make(map[string]models.Figure, len(ids))
	for i, id := range ids {
		e, _ := s.dash.Registry.Get(id)
		figures[id] = e.Figure
		data.Charts = append(data.Charts, pageChart{
			ID:      id,
			Trigger: view.EnlargeTrigger(id),
			Label:   "Enlarge Graph " + strconv.Itoa(i+1),
		})
	}

	raw, err := json.Marshal(figures)
	if err != nil {
		s.log.Error("encoding figures", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	data.Figures = template.JS(raw)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.log.Error("rendering page", "error", err)
	}
}
