package adaptor

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", errors.New("appointment not found"), http.StatusNotFound},
		{"validation", errors.New("validation failed: Name: This field is required"), http.StatusBadRequest},
		{"bad id", errors.New("invalid appointment ID format abc"), http.StatusBadRequest},
		{"bad credentials keep 401 despite the word invalid", errors.New("invalid credentials"), http.StatusUnauthorized},
		{"deactivated account", errors.New("account is deactivated"), http.StatusUnauthorized},
		{"time conflict", errors.New("time conflict: collaborator is booked until 11:00"), http.StatusConflict},
		{"already finalized", errors.New("appointment already finalized"), http.StatusConflict},
		{"out of stock", errors.New("product Shampoo is out of stock"), http.StatusConflict},
		{"unclassified", errors.New("failed to create appointment"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
