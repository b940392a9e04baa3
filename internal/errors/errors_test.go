package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/mindwell/internal/service"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_ServiceKinds(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantMsg    string
	}{
		{"invalid_argument", service.ErrInvalidTitle, http.StatusBadRequest, "Invalid title"},
		{"unauthenticated", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials."},
		{"forbidden", service.ErrBanned, http.StatusForbidden, "Your account has been banned."},
		{"not_found", service.ErrThreadNotFound, http.StatusNotFound, "Thread not found"},
		{"conflict", service.ErrEmailTaken, http.StatusConflict, "Email already in use."},
		{"unavailable", service.ErrAvatarsUnavailable, http.StatusServiceUnavailable, "Avatar storage is not configured"},
		{"wrapped", fmt.Errorf("service.community.Search: %w", service.ErrSearchTooShort), http.StatusBadRequest,
			"Search query must be at least 3 characters long"},
		{"unknown kind", &service.Error{Kind: errors.New("odd"), Message: "odd"}, http.StatusInternalServerError, "odd"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantMsg, resp.Message)
		})
	}
}

func TestToHTTP_InternalErrorsHideDetails(t *testing.T) {
	gotStatus, resp := ToHTTP(errors.New("pq: relation users does not exist"))
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "Internal server error", resp.Message)
}

func TestToHTTP_NilError_Returns500(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "Internal server error", resp.Message)
}

func TestToHTTP_Context(t *testing.T) {
	st, _ := ToHTTP(fmt.Errorf("op: %w", context.Canceled))
	require.Equal(t, StatusClientClosedRequest, st)

	st, _ = ToHTTP(fmt.Errorf("op: %w", context.DeadlineExceeded))
	require.Equal(t, http.StatusGatewayTimeout, st)
}

func TestWriteError_WritesJSONWithRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/threads/1", nil)
	req.Header.Set("X-Request-Id", "rid-123")

	WriteError(rr, req, service.ErrThreadNotFound)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Thread not found", body.Message)
	require.Equal(t, "rid-123", body.RequestID)
}

func TestWriteError_NoRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rr, req, errors.New("boom"))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.NotContains(t, rr.Body.String(), "request_id")
	require.NotContains(t, rr.Body.String(), "boom")
}
