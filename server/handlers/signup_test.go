package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/schoolactivities/activities"
)

func signupRequest(activity, email string) *http.Request {
	target := "/activities/" + url.PathEscape(activity) + "/signup"
	if email != "" {
		target += "?email=" + url.QueryEscape(email)
	}
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req.SetPathValue("activity", activity)
	return req
}

func TestSignupHandler_Success(t *testing.T) {
	store := testStore()
	recorder := &mockRecorder{}
	handler := NewSignupHandler(slog.Default(), store, recorder)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, signupRequest("Soccer Team", "test@mergington.edu"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test@mergington.edu")
	assert.Contains(t, w.Body.String(), "Soccer Team")

	activity, err := store.Get("Soccer Team")
	require.NoError(t, err)
	assert.Contains(t, activity.Participants, "test@mergington.edu")

	assert.Equal(t, []string{"Soccer Team"}, recorder.signups)
	assert.Equal(t, 3, recorder.lastRosterLen)
}

func TestSignupHandler_UnknownActivity(t *testing.T) {
	recorder := &mockRecorder{}
	handler := NewSignupHandler(slog.Default(), testStore(), recorder)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, signupRequest("Nonexistent Activity", "test@mergington.edu"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Activity not found")
	assert.Equal(t, []string{"not_found"}, recorder.rejections)
}

func TestSignupHandler_Duplicate(t *testing.T) {
	store := testStore()
	recorder := &mockRecorder{}
	handler := NewSignupHandler(slog.Default(), store, recorder)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, signupRequest("Soccer Team", "duplicate@mergington.edu"))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, signupRequest("Soccer Team", "duplicate@mergington.edu"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already signed up")
	assert.Equal(t, []string{"duplicate"}, recorder.rejections)
}

func TestSignupHandler_MissingEmail(t *testing.T) {
	recorder := &mockRecorder{}
	handler := NewSignupHandler(slog.Default(), testStore(), recorder)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, signupRequest("Soccer Team", ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
	assert.Equal(t, []string{"missing_email"}, recorder.rejections)
}

func TestSignupHandler_CapacityEnforced(t *testing.T) {
	store := testStore(activities.WithCapacityEnforcement())
	recorder := &mockRecorder{}
	handler := NewSignupHandler(slog.Default(), store, recorder)

	// Art Club seats 2 with 1 seeded
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, signupRequest("Art Club", "second@mergington.edu"))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, signupRequest("Art Club", "third@mergington.edu"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Activity is full")
	assert.Equal(t, []string{"full"}, recorder.rejections)
}

func TestSignupHandler_ErrorBodyShape(t *testing.T) {
	handler := NewSignupHandler(slog.Default(), testStore(), &mockRecorder{})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, signupRequest("Nonexistent Activity", "test@mergington.edu"))

	assert.JSONEq(t, `{"detail": "Activity not found"}`, w.Body.String())
}
