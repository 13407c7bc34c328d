package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codecloud/internal/errors"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		code     errors.ErrorCode
		expected int
	}{
		{errors.ModeInvalid, http.StatusBadRequest},
		{errors.AssetsMissing, http.StatusNotFound},
		{errors.RootInvalid, http.StatusNotFound},
		{errors.ConfigInvalid, http.StatusUnprocessableEntity},
		{errors.MethodNotAllowed, http.StatusMethodNotAllowed},
		{errors.InternalError, http.StatusInternalServerError},
		{errors.ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := MapErrorToStatus(tt.code); got != tt.expected {
				t.Errorf("MapErrorToStatus(%s) = %d, want %d", tt.code, got, tt.expected)
			}
		})
	}
}

func TestWriteCloudError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := errors.New(errors.MethodNotAllowed, "method not allowed", nil).
		WithDetails(map[string]string{"allow": http.MethodGet})
	WriteCloudError(rec, err)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}

	var body ErrorResponse
	if jsonErr := json.Unmarshal(rec.Body.Bytes(), &body); jsonErr != nil {
		t.Fatalf("invalid JSON: %v", jsonErr)
	}
	if body.Code != "METHOD_NOT_ALLOWED" || body.Error != "method not allowed" {
		t.Errorf("body = %+v", body)
	}

	details, ok := body.Details.(map[string]interface{})
	if !ok || details["allow"] != http.MethodGet {
		t.Errorf("details = %#v, want allow=GET", body.Details)
	}
}
