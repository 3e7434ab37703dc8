package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"alertroster/internal/delivery/http/helpers"
	"alertroster/internal/domain"
)

// UpdateSettingsRequest is the request body for POST /api/settings in settings mode.
type UpdateSettingsRequest struct {
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Validate implements helpers.Validator.
func (u UpdateSettingsRequest) Validate() []string {
	var errs []string
	if u.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// SettingsController handles the legacy single-record settings endpoints.
type SettingsController struct {
	Logger  *slog.Logger
	Service domain.SettingsService
}

// NewSettingsController creates a SettingsController with the given logger and service.
func NewSettingsController(logger *slog.Logger, svc domain.SettingsService) *SettingsController {
	return &SettingsController{Logger: logger, Service: svc}
}

// GetSettings godoc
// @Summary Get the current alert settings
// @Description Returns the single settings record, or {} if none has been saved yet. No auth required to read.
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Recipient "the settings record, or {} when absent"
// @Failure 500 {object} helpers.StatusResponse
// @Router /api/settings [get]
func (c *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	rec, err := c.Service.GetSettings(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteStatus(w, http.StatusInternalServerError, false, "Failed to fetch settings.")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, rec)
}

// UpdateSettings godoc
// @Summary Save the alert settings
// @Description Creates or replaces the single settings record. Requires the shared settings password in the body.
// @Tags settings
// @Accept json
// @Produce json
// @Param body body UpdateSettingsRequest true "Password plus the email/phone to store"
// @Success 200 {object} helpers.StatusResponse
// @Failure 400 {object} helpers.StatusResponse
// @Failure 401 {object} helpers.StatusResponse "invalid password"
// @Failure 500 {object} helpers.StatusResponse
// @Router /api/settings [post]
func (c *SettingsController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, err := c.Service.UpsertSettings(r.Context(), req.Password, req.Email, req.Phone); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteStatus(w, http.StatusUnauthorized, false, "Invalid password.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteStatus(w, http.StatusInternalServerError, false, "Failed to save settings.")
		return
	}
	helpers.WriteStatus(w, http.StatusOK, true, "Settings saved successfully!")
}
