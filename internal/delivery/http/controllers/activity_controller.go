package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns every activity keyed by name, with description, schedule, capacity and current participants.
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]domain.Activity
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	catalog, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	if catalog == nil {
		catalog = domain.ActivityCatalog{}
	}
	helpers.WriteJSON(w, http.StatusOK, catalog)
}

// Signup godoc
// @Summary Sign a student up for an activity
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "already signed up, activity full (capacity limit enabled) or email parameter missing"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /activities/{name}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email, ok := helpers.RequireQuery(w, r, "email")
	if !ok {
		return
	}

	msg, err := c.Service.Signup(r.Context(), name, email)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteMessage(w, http.StatusOK, msg)
}

// Unregister godoc
// @Summary Remove a student from an activity
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError "not signed up or email parameter missing"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /activities/{name}/unregister [delete]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email, ok := helpers.RequireQuery(w, r, "email")
	if !ok {
		return
	}

	msg, err := c.Service.Unregister(r.Context(), name, email)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteMessage(w, http.StatusOK, msg)
}

func (c *ActivityController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Student is already signed up")
	case errors.Is(err, domain.ErrNotSignedUp):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Student is not signed up for this activity")
	case errors.Is(err, domain.ErrActivityFull):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Activity is full")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
	}
}
