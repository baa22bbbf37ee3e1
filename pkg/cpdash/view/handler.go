package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
)

// TriggerClose is the id of the modal's close button.
const TriggerClose = "close"

// enlargePrefix prefixes a slot id to form its enlarge button id.
const enlargePrefix = "btn-"

// ErrUnknownTrigger indicates an event named an input the dashboard does not have.
var ErrUnknownTrigger = errors.New("unknown trigger")

// EnlargeTrigger returns the enlarge button id for a slot.
func EnlargeTrigger(id string) string {
	return enlargePrefix + id
}

// Handler maps dashboard events to modal state transitions.
type Handler struct {
	registry *Registry
	pageSize int
}

// NewHandler creates a handler over a chart registry.
func NewHandler(r *Registry) *Handler {
	return &Handler{
		registry: r,
		pageSize: DefaultPageSize,
	}
}

// Registry returns the registry the handler reads from.
func (h *Handler) Registry() *Registry {
	return h.registry
}

// Handle applies one event to the modal state.
//
// Only the first triggered input is honored. With no trigger the state is
// returned as-is and nothing is updated. The close button toggles the modal;
// an enlarge button opens it on that chart with the first page of its
// detail table. An unknown trigger leaves the state unchanged.
func (h *Handler) Handle(state models.ViewState, ev models.Event) (models.ViewState, models.Update, error) {
	if len(ev.Triggered) == 0 {
		return state, models.Update{IsOpen: state.IsOpen}, nil
	}

	trigger := ev.Triggered[0]
	if trigger == TriggerClose {
		state.IsOpen = !state.IsOpen
		return state, models.Update{IsOpen: state.IsOpen}, nil
	}

	id, ok := strings.CutPrefix(trigger, enlargePrefix)
	if !ok {
		return state, models.Update{IsOpen: state.IsOpen}, fmt.Errorf("%w: %q", ErrUnknownTrigger, trigger)
	}
	entry, ok := h.registry.Get(id)
	if !ok {
		return state, models.Update{IsOpen: state.IsOpen}, fmt.Errorf("%w: %q", ErrUnknownTrigger, trigger)
	}

	table, _ := h.registry.Table(id, h.pageSize)
	page := table.Page(0)
	fig := entry.Figure

	next := models.ViewState{IsOpen: true, Chart: id}
	return next, models.Update{
		Figure: &fig,
		Table:  &page,
		IsOpen: true,
	}, nil
}
