package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/mindwell/internal/http/middleware"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/service"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rc))
}

func TestPathID(t *testing.T) {
	cases := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "17", want: 17},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range cases {
		r := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "threadID", tc.raw)

		got, err := pathID(r, "threadID")
		if tc.wantErr {
			require.ErrorIs(t, err, service.ErrInvalidArgument, tc.raw)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestDecodeJSON(t *testing.T) {
	var in registerRequest

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"bob","extra":1}`))
	require.NoError(t, decodeJSON(httptest.NewRecorder(), r, &in))
	require.Equal(t, "bob", in.Username)

	// Пустое тело — пустой объект.
	r = httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, decodeJSON(httptest.NewRecorder(), r, &in))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":`))
	require.ErrorIs(t, decodeJSON(httptest.NewRecorder(), r, &in), service.ErrInvalidArgument)
}

func TestQueryDate(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?date=2025-03-14", nil)
	d, err := queryDate(r, "date")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), d)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	d, err = queryDate(r, "date")
	require.NoError(t, err)
	require.True(t, d.IsZero())

	r = httptest.NewRequest(http.MethodGet, "/?date=03/14/2025", nil)
	_, err = queryDate(r, "date")
	require.ErrorIs(t, err, service.ErrInvalidDate)
}

func TestQueryTime(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?start=2025-03-01T10:00:00Z&end=2025-03-14", nil)

	from, err := queryTime(r, "start")
	require.NoError(t, err)
	require.Equal(t, 10, from.Hour())

	to, err := queryTime(r, "end")
	require.NoError(t, err)
	require.Equal(t, 14, to.Day())

	none, err := queryTime(r, "missing")
	require.NoError(t, err)
	require.Nil(t, none)

	r = httptest.NewRequest(http.MethodGet, "/?start=yesterday", nil)
	_, err = queryTime(r, "start")
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=2&limit=-1", nil)

	page, err := queryInt(r, "page", 1)
	require.NoError(t, err)
	require.Equal(t, 2, page)

	_, err = queryInt(r, "limit", 0)
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	def, err := queryInt(r, "missing", 5)
	require.NoError(t, err)
	require.Equal(t, 5, def)
}

func TestIdentity(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := identity(r)
	require.ErrorIs(t, err, service.ErrUnauthenticated)

	r = r.WithContext(middleware.WithIdentity(r.Context(), &models.Identity{UserID: 9}))
	id, err := identity(r)
	require.NoError(t, err)
	require.EqualValues(t, 9, id.UserID)
}

func TestUpdateProfileRequest_ParsesDate(t *testing.T) {
	dob := "1990-05-17"
	upd, err := updateProfileRequest{DateOfBirth: &dob}.toUpdate()
	require.NoError(t, err)
	require.Equal(t, 1990, upd.DateOfBirth.Year())

	bad := "17.05.1990"
	_, err = updateProfileRequest{DateOfBirth: &bad}.toUpdate()
	require.ErrorIs(t, err, service.ErrInvalidDate)
}
