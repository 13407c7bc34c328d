package api

import (
	"encoding/json"
	"net/http"

	"codecloud/internal/errors"
)

// ErrorResponse represents an HTTP error response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteCloudError writes a CloudError with automatic status code mapping
func WriteCloudError(w http.ResponseWriter, err *errors.CloudError) {
	WriteJSON(w, ErrorResponse{
		Error:   err.Message,
		Code:    string(err.Code),
		Details: err.Details,
	}, MapErrorToStatus(err.Code))
}

// MapErrorToStatus maps codecloud error codes to HTTP status codes
func MapErrorToStatus(code errors.ErrorCode) int {
	switch code {
	case errors.ModeInvalid:
		return http.StatusBadRequest
	case errors.AssetsMissing, errors.RootInvalid:
		return http.StatusNotFound
	case errors.ConfigInvalid:
		return http.StatusUnprocessableEntity
	case errors.MethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
