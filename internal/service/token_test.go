package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestIssueToken_Claims(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	u := testUser(5, models.RoleUser, models.RoleAdmin)

	res, err := svc.issueToken(context.Background(), u)
	require.NoError(t, err)
	require.Equal(t, fixedNow.Add(24*time.Hour), res.ExpiresAt)
	require.Same(t, u, res.User)

	claims, err := svc.parseToken(res.Token)
	require.NoError(t, err)
	require.Equal(t, int64(5), claims.UserID)
	require.Equal(t, u.Username, claims.Username)
	require.True(t, claims.IsAdmin)
	require.Equal(t, models.RoleAdmin, claims.Role)
	require.Equal(t, "5", claims.Subject)
	require.Equal(t, "mindwell", claims.Issuer)
	require.NotEmpty(t, claims.ID)
}

func TestIssueToken_UniqueJTI(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	u := testUser(1)

	a, err := svc.issueToken(context.Background(), u)
	require.NoError(t, err)
	b, err := svc.issueToken(context.Background(), u)
	require.NoError(t, err)

	ca, err := svc.parseToken(a.Token)
	require.NoError(t, err)
	cb, err := svc.parseToken(b.Token)
	require.NoError(t, err)
	require.NotEqual(t, ca.ID, cb.ID)
}

func TestParseToken_Rejects(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	cfg := testAuthCfg()

	sign := func(method jwt.SigningMethod, key any, mutate func(*accessClaims)) string {
		c := &accessClaims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    cfg.Issuer,
				Audience:  jwt.ClaimStrings(cfg.Audience),
				IssuedAt:  jwt.NewNumericDate(fixedNow),
				ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour)),
				ID:        "jti-1",
			},
		}
		if mutate != nil {
			mutate(c)
		}
		s, err := jwt.NewWithClaims(method, c).SignedString(key)
		require.NoError(t, err)
		return s
	}

	secret := []byte(cfg.JWTSecret)

	cases := map[string]string{
		"garbage":      "not-a-jwt",
		"wrong secret": sign(jwt.SigningMethodHS256, []byte("other"), nil),
		"wrong alg":    sign(jwt.SigningMethodHS512, secret, nil),
		"wrong issuer": sign(jwt.SigningMethodHS256, secret, func(c *accessClaims) { c.Issuer = "evil" }),
		"wrong aud":    sign(jwt.SigningMethodHS256, secret, func(c *accessClaims) { c.Audience = jwt.ClaimStrings{"other"} }),
		"expired": sign(jwt.SigningMethodHS256, secret, func(c *accessClaims) {
			c.ExpiresAt = jwt.NewNumericDate(fixedNow.Add(-time.Minute))
		}),
		"no user": sign(jwt.SigningMethodHS256, secret, func(c *accessClaims) { c.UserID = 0 }),
		"no jti":  sign(jwt.SigningMethodHS256, secret, func(c *accessClaims) { c.ID = "" }),
	}

	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.parseToken(tok)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestAuthenticate_OK(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	u := testUser(3, models.RoleUser, models.RoleAdmin)

	res, err := svc.issueToken(context.Background(), u)
	require.NoError(t, err)

	d.users.EXPECT().UserByID(gomock.Any(), int64(3)).Return(u, nil)

	id, err := svc.Authenticate(context.Background(), res.Token)
	require.NoError(t, err)
	require.Equal(t, int64(3), id.UserID)
	require.Equal(t, u.Username, id.Username)
	require.True(t, id.IsAdmin)
	require.NotEmpty(t, id.TokenID)
	require.WithinDuration(t, res.ExpiresAt, id.ExpiresAt, 0)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, ErrTokenRequired)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticate_Expired(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	res, err := svc.issueToken(context.Background(), testUser(3))
	require.NoError(t, err)

	svc.now = func() time.Time { return fixedNow.Add(25 * time.Hour) }

	_, err = svc.Authenticate(context.Background(), res.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAuthenticate_BannedUser(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	u := testUser(3)

	res, err := svc.issueToken(context.Background(), u)
	require.NoError(t, err)

	banned := *u
	banned.IsBanned = true
	d.users.EXPECT().UserByID(gomock.Any(), int64(3)).Return(&banned, nil)

	_, err = svc.Authenticate(context.Background(), res.Token)
	require.ErrorIs(t, err, ErrBanned)
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)

	res, err := svc.issueToken(context.Background(), testUser(3))
	require.NoError(t, err)

	d.users.EXPECT().UserByID(gomock.Any(), int64(3)).Return(nil, storage.ErrNotFound)

	_, err = svc.Authenticate(context.Background(), res.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_Revoked(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	svc.SetDenylist(d.denylist)

	res, err := svc.issueToken(context.Background(), testUser(3))
	require.NoError(t, err)

	d.denylist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err = svc.Authenticate(context.Background(), res.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_DenylistFailure(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	svc.SetDenylist(d.denylist)

	res, err := svc.issueToken(context.Background(), testUser(3))
	require.NoError(t, err)

	boom := errors.New("redis down")
	d.denylist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, boom)

	_, err = svc.Authenticate(context.Background(), res.Token)
	require.ErrorIs(t, err, boom)

	var se *Error
	require.False(t, errors.As(err, &se))
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("without denylist is a no-op", func(t *testing.T) {
		svc, _ := newTestService(t)
		require.NoError(t, svc.Logout(context.Background(), &models.Identity{UserID: 1, TokenID: "j"}))
	})

	t.Run("revokes until expiry", func(t *testing.T) {
		svc, d := newTestService(t)
		svc.SetDenylist(d.denylist)

		id := &models.Identity{UserID: 1, TokenID: "jti-9", ExpiresAt: fixedNow.Add(90 * time.Minute)}
		d.denylist.EXPECT().Revoke(gomock.Any(), "jti-9", 90*time.Minute).Return(nil)

		require.NoError(t, svc.Logout(context.Background(), id))
	})
}
