package helpers

import (
	"encoding/json"
	"net/http"
)

// StatusResponse is the body returned for mutations and for every failure:
// {"success": bool, "message": string}. Reads return the record(s) directly.
// swagger:model StatusResponse
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteStatus writes a StatusResponse with the given outcome and message.
func WriteStatus(w http.ResponseWriter, statusCode int, success bool, message string) {
	WriteJSON(w, statusCode, StatusResponse{Success: success, Message: message})
}
