package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mergington/schoolactivities/activities"
)

// SignupHandler handles requests to sign a student up for an activity.
// The activity name comes from the path, the student email from the
// email query parameter.
type SignupHandler struct {
	logger   *slog.Logger
	store    Registrar
	recorder MetricsRecorder
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(logger *slog.Logger, store Registrar, recorder MetricsRecorder) *SignupHandler {
	return &SignupHandler{
		logger:   logger,
		store:    store,
		recorder: recorder,
	}
}

// ServeHTTP implements http.Handler.
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activity")
	email := r.URL.Query().Get("email")

	if email == "" {
		h.recorder.RecordRejection("missing_email")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Detail: "email query parameter is required",
		})
		return
	}

	if err := h.store.Signup(name, email); err != nil {
		h.logger.Warn("signup rejected", "activity", name, "email", email, "error", err)

		switch {
		case errors.Is(err, activities.ErrNotFound):
			h.recorder.RecordRejection("not_found")
			writeJSON(w, http.StatusNotFound, ErrorResponse{
				Detail: "Activity not found",
			})
		case errors.Is(err, activities.ErrAlreadySignedUp):
			h.recorder.RecordRejection("duplicate")
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Detail: "Student is already signed up",
			})
		case errors.Is(err, activities.ErrActivityFull):
			h.recorder.RecordRejection("full")
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Detail: "Activity is full",
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
	h.recorder.RecordSignup(name, rosterSize)

	h.logger.Info("signup recorded", "activity", name, "email", email, "roster_size", rosterSize)

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}
