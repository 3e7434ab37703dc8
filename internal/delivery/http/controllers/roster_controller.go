package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"alertroster/internal/delivery/http/helpers"
	"alertroster/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AddRecipientRequest is the request body for POST /api/settings in roster mode.
type AddRecipientRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"recipient_email"`
	Phone     string `json:"alert_phone_number"`
}

// Validate implements helpers.Validator.
func (a AddRecipientRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(a.Email)
	if email == "" {
		errs = append(errs, "recipient_email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// RosterController handles the multi-record recipient endpoints.
type RosterController struct {
	Logger  *slog.Logger
	Service domain.RosterService
}

// NewRosterController creates a RosterController with the given logger and service.
func NewRosterController(logger *slog.Logger, svc domain.RosterService) *RosterController {
	return &RosterController{Logger: logger, Service: svc}
}

// ListRecipients godoc
// @Summary List alert recipients
// @Description Returns all registered recipients. An empty roster yields an empty array.
// @Tags recipients
// @Produce json
// @Success 200 {array} domain.Recipient
// @Failure 500 {object} helpers.StatusResponse
// @Router /api/settings [get]
func (c *RosterController) ListRecipients(w http.ResponseWriter, r *http.Request) {
	recipients, err := c.Service.ListRecipients(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteStatus(w, http.StatusInternalServerError, false, "Failed to fetch recipients.")
		return
	}
	if recipients == nil {
		recipients = []*domain.Recipient{}
	}
	helpers.WriteJSON(w, http.StatusOK, recipients)
}

// AddRecipient godoc
// @Summary Register an alert recipient
// @Description Adds a new recipient. Rejects emails that are already on file.
// @Tags recipients
// @Accept json
// @Produce json
// @Param body body AddRecipientRequest true "Recipient to register"
// @Success 201 {object} helpers.StatusResponse
// @Failure 400 {object} helpers.StatusResponse
// @Failure 409 {object} helpers.StatusResponse "duplicate email"
// @Failure 500 {object} helpers.StatusResponse
// @Router /api/settings [post]
func (c *RosterController) AddRecipient(w http.ResponseWriter, r *http.Request) {
	var req AddRecipientRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, err := c.Service.AddRecipient(r.Context(), req.FirstName, req.LastName, req.Email, req.Phone); err != nil {
		if errors.Is(err, domain.ErrDuplicateRecipient) {
			helpers.WriteStatus(w, http.StatusConflict, false, "A recipient with this email already exists.")
			return
		}
		if strings.Contains(err.Error(), "invalid email") {
			helpers.WriteStatus(w, http.StatusBadRequest, false, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteStatus(w, http.StatusInternalServerError, false, "Failed to add recipient.")
		return
	}
	helpers.WriteStatus(w, http.StatusCreated, true, "Recipient added successfully!")
}
