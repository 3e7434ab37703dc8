package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alertroster/internal/delivery/http/helpers"
	"alertroster/internal/domain"
)

// fakeRosterService implements domain.RosterService for handler tests.
type fakeRosterService struct {
	listRecs []*domain.Recipient
	listErr  error
	addErr   error
	lastAdd  *domain.Recipient
}

func (f *fakeRosterService) ListRecipients(ctx context.Context) ([]*domain.Recipient, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listRecs, nil
}

func (f *fakeRosterService) AddRecipient(ctx context.Context, firstName, lastName, email, phone string) (*domain.Recipient, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.lastAdd = &domain.Recipient{ID: 1, FirstName: firstName, LastName: lastName, Email: email, Phone: phone}
	return f.lastAdd, nil
}

func TestRosterController_ListRecipients(t *testing.T) {
	tests := []struct {
		name       string
		fake       *fakeRosterService
		wantStatus int
		wantBody   string
	}{
		{
			name: "two recipients",
			fake: &fakeRosterService{listRecs: []*domain.Recipient{
				{ID: 1, FirstName: "Alice", LastName: "Ng", Email: "a@x.com"},
				{ID: 2, FirstName: "Bob", LastName: "Lim", Email: "b@x.com"},
			}},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":1,"first_name":"Alice","last_name":"Ng","recipient_email":"a@x.com"},{"id":2,"first_name":"Bob","last_name":"Lim","recipient_email":"b@x.com"}]`,
		},
		{
			name:       "empty roster is an empty array not null",
			fake:       &fakeRosterService{},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "service error",
			fake:       &fakeRosterService{listErr: assert.AnError},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"message":"Failed to fetch recipients."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewRosterController(discardLogger(), tt.fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/api/settings", nil)
			rr := httptest.NewRecorder()

			ctrl.ListRecipients(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestRosterController_AddRecipient(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		fake        *fakeRosterService
		wantStatus  int
		wantSuccess bool
		wantMsg     string
	}{
		{
			name:        "success",
			body:        `{"first_name":"Alice","last_name":"Ng","recipient_email":"a@x.com","alert_phone_number":"+15550100"}`,
			fake:        &fakeRosterService{},
			wantStatus:  http.StatusCreated,
			wantSuccess: true,
			wantMsg:     "Recipient added successfully!",
		},
		{
			name:       "duplicate email",
			body:       `{"recipient_email":"a@x.com"}`,
			fake:       &fakeRosterService{addErr: domain.ErrDuplicateRecipient},
			wantStatus: http.StatusConflict,
			wantMsg:    "A recipient with this email already exists.",
		},
		{
			name:       "missing email",
			body:       `{"first_name":"Alice"}`,
			fake:       &fakeRosterService{},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "recipient_email is required",
		},
		{
			name:       "bad email format",
			body:       `{"recipient_email":"not-an-email"}`,
			fake:       &fakeRosterService{},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid email format",
		},
		{
			name:       "service-level email rejection",
			body:       `{"recipient_email":"a@x.com"}`,
			fake:       &fakeRosterService{addErr: errors.New("invalid email format")},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid email format",
		},
		{
			name:       "store failure",
			body:       `{"recipient_email":"a@x.com"}`,
			fake:       &fakeRosterService{addErr: assert.AnError},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to add recipient.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewRosterController(discardLogger(), tt.fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/api/settings", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			ctrl.AddRecipient(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var resp helpers.StatusResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestRosterController_AddRecipient_PassesFieldsThrough(t *testing.T) {
	fake := &fakeRosterService{}
	ctrl := NewRosterController(discardLogger(), fake)
	body := `{"first_name":"Alice","last_name":"Ng","recipient_email":"a@x.com","alert_phone_number":"+15550100"}`
	req := httptest.NewRequest(http.MethodPost, "http://test/api/settings", strings.NewReader(body))
	rr := httptest.NewRecorder()

	ctrl.AddRecipient(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, fake.lastAdd)
	assert.Equal(t, "Alice", fake.lastAdd.FirstName)
	assert.Equal(t, "Ng", fake.lastAdd.LastName)
	assert.Equal(t, "a@x.com", fake.lastAdd.Email)
	assert.Equal(t, "+15550100", fake.lastAdd.Phone)
}
