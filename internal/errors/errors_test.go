package errors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	err := New(http.StatusNotFound, "NOT_FOUND", "missing")
	assert.Equal(t, "missing", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "NOT_FOUND", err.ErrorCode)
}

func TestNewWithDetails(t *testing.T) {
	details := map[string]string{"column": "Text"}
	err := NewWithDetails(http.StatusBadRequest, "BAD", "bad input", details)
	assert.Equal(t, details, err.Details)
}

func TestAPIError_Render(t *testing.T) {
	err := New(http.StatusInternalServerError, "INTERNAL", "boom")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	assert.NoError(t, err.Render(rec, req))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("Message Date", "column not found")
	assert.Equal(t, "Message Date: column not found", err.Error())
}
