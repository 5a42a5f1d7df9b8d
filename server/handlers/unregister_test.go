package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unregisterRequest(activity, email string) *http.Request {
	target := "/activities/" + url.PathEscape(activity) + "/unregister"
	if email != "" {
		target += "?email=" + url.QueryEscape(email)
	}
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req.SetPathValue("activity", activity)
	return req
}

func TestUnregisterHandler_Success(t *testing.T) {
	store := testStore()
	recorder := &mockRecorder{}
	handler := NewUnregisterHandler(slog.Default(), store, recorder)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, unregisterRequest("Soccer Team", "john@mergington.edu"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Unregistered")

	activity, err := store.Get("Soccer Team")
	require.NoError(t, err)
	assert.NotContains(t, activity.Participants, "john@mergington.edu")

	assert.Equal(t, []string{"Soccer Team"}, recorder.unregisters)
	assert.Equal(t, 1, recorder.lastRosterLen)
}

func TestUnregisterHandler_UnknownActivity(t *testing.T) {
	recorder := &mockRecorder{}
	handler := NewUnregisterHandler(slog.Default(), testStore(), recorder)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, unregisterRequest("Nonexistent Activity", "test@mergington.edu"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Activity not found")
	assert.Equal(t, []string{"not_found"}, recorder.rejections)
}

func TestUnregisterHandler_NotSignedUp(t *testing.T) {
	recorder := &mockRecorder{}
	handler := NewUnregisterHandler(slog.Default(), testStore(), recorder)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, unregisterRequest("Soccer Team", "notregistered@mergington.edu"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not signed up")
	assert.Equal(t, []string{"not_signed_up"}, recorder.rejections)
}

func TestUnregisterHandler_MissingEmail(t *testing.T) {
	recorder := &mockRecorder{}
	handler := NewUnregisterHandler(slog.Default(), testStore(), recorder)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, unregisterRequest("Soccer Team", ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"missing_email"}, recorder.rejections)
}
