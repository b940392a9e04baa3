package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/mindwell/internal/config"
	apierrors "github.com/pribylovaa/mindwell/internal/errors"
	"github.com/pribylovaa/mindwell/internal/http/middleware"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/service"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/pribylovaa/mindwell/mocks"
)

const (
	testEmail    = "alice@example.com"
	testPassword = "secret123"
)

type testEnv struct {
	handler http.Handler
	st      *mocks.MockStorage
	reg     *prometheus.Registry
	alice   *models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)

	svc := service.New(st, config.AuthConfig{
		JWTSecret:  "router-test-secret",
		TokenTTL:   time.Hour,
		Issuer:     "mindwell",
		Audience:   []string{"mindwell-api"},
		BcryptCost: bcrypt.MinCost,
	})

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	h := NewRouter(svc, Options{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Timeout:     time.Second,
		BasePath:    "/api",
		CORSOrigins: []string{"*"},
		Metrics:     middleware.NewMetrics(reg),
	})

	return &testEnv{
		handler: h,
		st:      st,
		reg:     reg,
		alice: &models.User{
			ID:           1,
			Username:     "alice",
			Email:        testEmail,
			PasswordHash: string(hash),
			Roles:        []string{models.RoleUser},
			WaterGoalML:  2000,
		},
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

// login выдаёт токен alice и ожидает свежий поиск пользователя на каждый
// последующий аутентифицированный запрос.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()

	e.st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(e.alice, nil)

	rr := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "  Alice@Example.com ",
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			ID       int64  `json:"user_id"`
			Role     string `json:"role"`
			IsBanned bool   `json:"is_banned"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, "Login successful", out.Message)
	require.Equal(t, models.RoleUser, out.User.Role)
	require.NotEmpty(t, out.Token)

	e.st.EXPECT().UserByID(gomock.Any(), e.alice.ID).Return(e.alice, nil).AnyTimes()

	return out.Token
}

func errMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var body apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Message
}

func TestRouter_Register(t *testing.T) {
	e := newTestEnv(t)

	e.st.EXPECT().UserTaken(gomock.Any(), testEmail, "alice", int64(0)).Return(false, false, nil)
	e.st.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, u *models.User) (*models.User, error) {
			require.NotEqual(t, testPassword, u.PasswordHash)
			out := *u
			out.ID = 42
			out.Roles = []string{models.RoleUser}
			return &out, nil
		})

	rr := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice",
		"email":    testEmail,
		"password": testPassword,
	})

	require.Equal(t, http.StatusCreated, rr.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, "User registered successfully!", out["message"])
	require.NotEmpty(t, out["token"])

	user := out["user"].(map[string]any)
	require.EqualValues(t, 42, user["user_id"])
	require.Equal(t, false, user["isAdmin"])
	require.NotContains(t, user, "role")
}

func TestRouter_RegisterDuplicateEmail(t *testing.T) {
	e := newTestEnv(t)

	e.st.EXPECT().UserTaken(gomock.Any(), testEmail, "alice2", int64(0)).Return(true, false, nil)

	rr := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice2",
		"email":    testEmail,
		"password": testPassword,
	})

	require.Equal(t, http.StatusConflict, rr.Code)
	require.Equal(t, "Email already in use.", errMessage(t, rr))
}

func TestRouter_RegisterMalformedBody(t *testing.T) {
	e := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Invalid request body", errMessage(t, rr))
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	e := newTestEnv(t)

	rr := e.do(t, http.MethodGet, "/api/community/topics", "", nil)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "Authentication token required.", errMessage(t, rr))
	require.NotEmpty(t, rr.Header().Get(middleware.HeaderRequestID))
}

func TestRouter_InvalidTokenForbidden(t *testing.T) {
	e := newTestEnv(t)

	rr := e.do(t, http.MethodGet, "/api/community/topics", "not-a-jwt", nil)

	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Equal(t, "Invalid or expired token.", errMessage(t, rr))
}

func TestRouter_BannedUserRejected(t *testing.T) {
	e := newTestEnv(t)

	e.st.EXPECT().UserByEmail(gomock.Any(), testEmail).Return(e.alice, nil)
	rr := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": testEmail, "password": testPassword})
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))

	banned := *e.alice
	banned.IsBanned = true
	e.st.EXPECT().UserByID(gomock.Any(), e.alice.ID).Return(&banned, nil)

	rr = e.do(t, http.MethodGet, "/api/community/topics", out.Token, nil)

	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Equal(t, "Your account has been banned.", errMessage(t, rr))
}

func TestRouter_TopicsAndMetrics(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	e.st.EXPECT().Topics(gomock.Any()).Return([]models.Topic{{ID: 1, Name: "Anxiety", ThreadCount: 3}}, nil)

	rr := e.do(t, http.MethodGet, "/api/community/topics", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var topics []models.Topic
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &topics))
	require.Len(t, topics, 1)
	require.EqualValues(t, 3, topics[0].ThreadCount)

	const want = `
# HELP mindwell_http_requests_total HTTP requests by method, route pattern and status.
# TYPE mindwell_http_requests_total counter
mindwell_http_requests_total{method="GET",route="/api/community/topics",status="200"} 1
mindwell_http_requests_total{method="POST",route="/api/auth/login",status="200"} 1
`
	require.NoError(t, testutil.GatherAndCompare(e.reg, strings.NewReader(want), "mindwell_http_requests_total"))
}

func TestRouter_ThreadLikeToggle(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	gomock.InOrder(
		e.st.EXPECT().ToggleThreadLike(gomock.Any(), int64(7), e.alice.ID).Return(&models.LikeResult{Liked: true, LikeCount: 1}, nil),
		e.st.EXPECT().ToggleThreadLike(gomock.Any(), int64(7), e.alice.ID).Return(&models.LikeResult{Liked: false, LikeCount: 0}, nil),
	)

	for _, want := range []models.LikeResult{{Liked: true, LikeCount: 1}, {Liked: false, LikeCount: 0}} {
		rr := e.do(t, http.MethodPost, "/api/community/threads/7/like", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var got models.LikeResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Equal(t, want, got)
	}
}

func TestRouter_ThreadNotFound(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	e.st.EXPECT().ThreadByID(gomock.Any(), int64(99), e.alice.ID).Return(nil, storage.ErrNotFound)

	rr := e.do(t, http.MethodGet, "/api/community/threads/99", token, nil)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "Thread not found", errMessage(t, rr))
}

func TestRouter_InvalidPathID(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	rr := e.do(t, http.MethodGet, "/api/community/threads/abc", token, nil)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Invalid ID", errMessage(t, rr))
}

func TestRouter_ReportsRequireModerator(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	e.st.EXPECT().HasAnyRole(gomock.Any(), e.alice.ID, models.RoleAdmin, models.RoleModerator).Return(false, nil)

	rr := e.do(t, http.MethodGet, "/api/community/reports", token, nil)

	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Equal(t, "Forbidden: Requires admin/moderator privileges.", errMessage(t, rr))
}

func TestRouter_SearchTooShort(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	rr := e.do(t, http.MethodGet, "/api/community/search?query=%20ab%20", token, nil)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Search query must be at least 3 characters long", errMessage(t, rr))
}

func TestRouter_WaterProgressInvalidDate(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	rr := e.do(t, http.MethodGet, "/api/water/progress?date=14-03-2025", token, nil)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Invalid date format. Use YYYY-MM-DD.", errMessage(t, rr))
}

func TestRouter_BanStatusRequiresFlag(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	e.st.EXPECT().HasAnyRole(gomock.Any(), e.alice.ID, models.RoleAdmin, models.RoleModerator).Return(true, nil)

	rr := e.do(t, http.MethodPut, "/api/users/5/ban-status", token, map[string]any{})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "is_banned (boolean) is required in the request body.", errMessage(t, rr))
}

func TestRouter_DailyQuote(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	rr := e.do(t, http.MethodGet, "/api/quotes", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var q models.Quote
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &q))
	require.NotEmpty(t, q.Text)
	require.NotEmpty(t, q.Author)
}

func TestRouter_LogoutWithoutDenylist(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	rr := e.do(t, http.MethodPost, "/api/auth/logout", token, nil)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	e := newTestEnv(t)

	rr := e.do(t, http.MethodGet, "/api/nope", "", nil)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_ThreadsPageOverflow(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	rr := e.do(t, http.MethodGet, "/api/community/topics/1/threads?page=3&limit=9223372036854775807", token, nil)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Invalid pagination parameters", errMessage(t, rr))
}

func TestRouter_SedonaSession(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	rr := e.do(t, http.MethodGet, "/api/sedona/exercises", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var ex struct {
		Exercises []models.SedonaExercise `json:"exercises"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ex))
	require.Len(t, ex.Exercises, 3)

	reflection := "lighter"
	e.st.EXPECT().CreateSedonaLog(gomock.Any(), e.alice.ID, &reflection).
		Return(&models.SedonaLog{ID: 4, UserID: e.alice.ID, ReflectionText: &reflection}, nil)

	rr = e.do(t, http.MethodPost, "/api/sedona/logs", token, map[string]any{"reflectionText": " lighter "})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.SedonaLog
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.Equal(t, int64(4), created.ID)

	e.st.EXPECT().SedonaLogs(gomock.Any(), e.alice.ID).Return(nil, nil)

	rr = e.do(t, http.MethodGet, "/api/sedona/logs", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())
}

func TestRouter_MusicPlaylistAliases(t *testing.T) {
	e := newTestEnv(t)
	token := e.login(t)

	for _, path := range []string{"/api/music/playlist", "/api/music/playlists"} {
		rr := e.do(t, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, rr.Code, path)

		var pl []models.Playlist
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pl))
		require.NotEmpty(t, pl)
	}
}
