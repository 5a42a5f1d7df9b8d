package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mergington/schoolactivities/activities"
)

// UnregisterHandler handles requests to remove a student from an activity.
type UnregisterHandler struct {
	logger   *slog.Logger
	store    Registrar
	recorder MetricsRecorder
}

// NewUnregisterHandler creates a new UnregisterHandler.
func NewUnregisterHandler(logger *slog.Logger, store Registrar, recorder MetricsRecorder) *UnregisterHandler {
	return &UnregisterHandler{
		logger:   logger,
		store:    store,
		recorder: recorder,
	}
}

// ServeHTTP implements http.Handler.
func (h *UnregisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activity")
	email := r.URL.Query().Get("email")

	if email == "" {
		h.recorder.RecordRejection("missing_email")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Detail: "email query parameter is required",
		})
		return
	}

	if err := h.store.Unregister(name, email); err != nil {
		h.logger.Warn("unregister rejected", "activity", name, "email", email, "error", err)

		switch {
		case errors.Is(err, activities.ErrNotFound):
			h.recorder.RecordRejection("not_found")
			writeJSON(w, http.StatusNotFound, ErrorResponse{
				Detail: "Activity not found",
			})
		case errors.Is(err, activities.ErrNotSignedUp):
			h.recorder.RecordRejection("not_signed_up")
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Detail: "Student is not signed up for this activity",
			})
		default:
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Detail: "internal error",
			})
		}
		return
	}

	rosterSize := 0
	if activity, err := h.store.Get(name); err == nil {
		rosterSize = len(activity.Participants)
	}
	h.recorder.RecordUnregister(name, rosterSize)

	h.logger.Info("unregister recorded", "activity", name, "email", email, "roster_size", rosterSize)

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}
