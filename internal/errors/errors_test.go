package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-blog-client/internal/backend"
	"github.com/pribylovaa/go-blog-client/internal/session"
	"github.com/pribylovaa/go-blog-client/internal/validate"
)

// Тесты маппинга ошибок в HTTP-ответ.

func TestToHTTP_Sentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"nil — программная ошибка", nil, http.StatusInternalServerError, "internal"},
		{"unauthenticated", backend.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"сессия не найдена", session.ErrNotFound, http.StatusUnauthorized, "unauthenticated"},
		{"permission denied", backend.ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
		{"not found", backend.ErrNotFound, http.StatusNotFound, "not_found"},
		{"already exists", backend.ErrAlreadyExists, http.StatusConflict, "already_exists"},
		{"invalid argument", backend.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"unavailable", backend.ErrUnavailable, http.StatusServiceUnavailable, "unavailable"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded"},
		{"canceled", context.Canceled, 499, "canceled"},
		{"неизвестная", fmt.Errorf("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.status, status)
			require.Equal(t, tc.code, resp.Error.Code)
		})
	}
}

func TestToHTTP_WrappedSentinel(t *testing.T) {
	t.Parallel()

	// Ошибки приходят завёрнутыми с именем операции — маппинг через errors.Is.
	err := fmt.Errorf("backend.GetPost: %w", backend.ErrNotFound)

	status, resp := ToHTTP(err)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "not_found", resp.Error.Code)
}

func TestToHTTP_Unauthenticated_CarriesLoginLocation(t *testing.T) {
	t.Parallel()

	_, resp := ToHTTP(backend.ErrUnauthenticated)
	require.Equal(t, LoginLocation, resp.Error.Location)
}

func TestToHTTP_ValidationFields(t *testing.T) {
	t.Parallel()

	fields := validate.FieldErrors{"title": "must be at least 5 characters"}

	status, resp := ToHTTP(fields)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalid_argument", resp.Error.Code)
	require.Equal(t, "must be at least 5 characters", resp.Error.Fields["title"])
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("X-Request-Id", "rid-42")

	rr := httptest.NewRecorder()
	WriteError(rr, req, backend.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "rid-42", resp.Error.RequestID)
}
