package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeActivityService implements domain.ActivityService for handler tests.
type fakeActivityService struct {
	catalog       domain.ActivityCatalog
	listErr       error
	signupErr     error
	unregisterErr error
	lastActivity  string
	lastEmail     string
}

func (f *fakeActivityService) ListActivities(ctx context.Context) (domain.ActivityCatalog, error) {
	return f.catalog, f.listErr
}

func (f *fakeActivityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	f.lastActivity, f.lastEmail = activityName, email
	if f.signupErr != nil {
		return "", f.signupErr
	}
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (f *fakeActivityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	f.lastActivity, f.lastEmail = activityName, email
	if f.unregisterErr != nil {
		return "", f.unregisterErr
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

func decodeAPIError(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIError {
	t.Helper()
	var body helpers.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestActivityController_ListActivities(t *testing.T) {
	chess := domain.NewActivity("Chess Club", "Learn chess", "Fridays", 12)
	chess.Participants = []string{"michael@mergington.edu"}
	svc := &fakeActivityService{catalog: domain.ActivityCatalog{"Chess Club": chess}}
	ctrl := NewActivityController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	rr := httptest.NewRecorder()
	ctrl.ListActivities(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Contains(t, body, "Chess Club")
	club := body["Chess Club"]
	assert.Equal(t, "Learn chess", club["description"])
	assert.Equal(t, "Fridays", club["schedule"])
	assert.Equal(t, float64(12), club["max_participants"])
	assert.Equal(t, []any{"michael@mergington.edu"}, club["participants"])
}

func TestActivityController_ListActivitiesEmpty(t *testing.T) {
	ctrl := NewActivityController(testLogger, &fakeActivityService{})
	rr := httptest.NewRecorder()
	ctrl.ListActivities(rr, httptest.NewRequest(http.MethodGet, "/activities", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
}

func TestActivityController_ListActivitiesError(t *testing.T) {
	ctrl := NewActivityController(testLogger, &fakeActivityService{listErr: errors.New("boom")})
	rr := httptest.NewRecorder()
	ctrl.ListActivities(rr, httptest.NewRequest(http.MethodGet, "/activities", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, helpers.ErrCodeInternalError, decodeAPIError(t, rr).Code)
}

func TestActivityController_Signup(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		svcErr     error
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{"success", "/activities/Chess%20Club/signup?email=alice@mergington.edu", nil, http.StatusOK, "", ""},
		{"duplicate", "/activities/Chess%20Club/signup?email=michael@mergington.edu", fmt.Errorf("add participant: %w", domain.ErrAlreadySignedUp), http.StatusBadRequest, helpers.ErrCodeBadRequest, "Student is already signed up"},
		{"unknown activity", "/activities/Nonexistent%20Club/signup?email=alice@mergington.edu", domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound, "Activity not found"},
		{"full", "/activities/Chess%20Club/signup?email=alice@mergington.edu", domain.ErrActivityFull, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Activity is full"},
		{"missing email", "/activities/Chess%20Club/signup", nil, http.StatusBadRequest, helpers.ErrCodeBadRequest, "email is required"},
		{"unexpected error", "/activities/Chess%20Club/signup?email=alice@mergington.edu", errors.New("boom"), http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeActivityService{signupErr: tt.svcErr}
			ctrl := NewActivityController(testLogger, svc)
			req := httptest.NewRequest(http.MethodPost, tt.url, nil)
			req.SetPathValue("name", "Chess Club")
			rr := httptest.NewRecorder()

			ctrl.Signup(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"message":"Signed up alice@mergington.edu for Chess Club"}`, rr.Body.String())
				assert.Equal(t, "Chess Club", svc.lastActivity)
				return
			}
			body := decodeAPIError(t, rr)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantDetail, body.Detail)
		})
	}
}

func TestActivityController_Unregister(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		svcErr     error
		wantStatus int
		wantDetail string
	}{
		{"success", "/activities/Chess%20Club/unregister?email=michael@mergington.edu", nil, http.StatusOK, ""},
		{"not signed up", "/activities/Chess%20Club/unregister?email=notexist@mergington.edu", domain.ErrNotSignedUp, http.StatusBadRequest, "Student is not signed up for this activity"},
		{"unknown activity", "/activities/Nonexistent%20Club/unregister?email=michael@mergington.edu", domain.ErrNotFound, http.StatusNotFound, "Activity not found"},
		{"missing email", "/activities/Chess%20Club/unregister", nil, http.StatusBadRequest, "email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeActivityService{unregisterErr: tt.svcErr}
			ctrl := NewActivityController(testLogger, svc)
			req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
			req.SetPathValue("name", "Chess Club")
			rr := httptest.NewRecorder()

			ctrl.Unregister(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"message":"Unregistered michael@mergington.edu from Chess Club"}`, rr.Body.String())
				assert.Equal(t, "michael@mergington.edu", svc.lastEmail)
				return
			}
			assert.Equal(t, tt.wantDetail, decodeAPIError(t, rr).Detail)
		})
	}
}

func TestActivityController_SignupEmptyEmailIsPassedThrough(t *testing.T) {
	svc := &fakeActivityService{}
	ctrl := NewActivityController(testLogger, svc)
	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=", nil)
	req.SetPathValue("name", "Chess Club")
	rr := httptest.NewRecorder()

	ctrl.Signup(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Chess Club", svc.lastActivity)
	assert.Equal(t, "", svc.lastEmail)
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
