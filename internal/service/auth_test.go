package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_OK(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	ctx := context.Background()

	d.users.EXPECT().UserTaken(gomock.Any(), "alice@example.com", "alice", int64(0)).Return(false, false, nil)
	d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) (*models.User, error) {
			require.Equal(t, "alice", u.Username)
			require.Equal(t, "alice@example.com", u.Email)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))

			out := *u
			out.ID = 10
			out.Roles = []string{models.RoleUser}
			return &out, nil
		})

	res, err := svc.Register(ctx, "  alice ", " Alice@Example.com ", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, int64(10), res.User.ID)
	require.Equal(t, models.RoleUser, res.User.PrimaryRole())
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                      string
		username, email, password string
		want                      error
	}{
		{"empty username", " ", "a@b.co", "secret1", ErrRegisterFieldsRequired},
		{"empty email", "bob", "", "secret1", ErrRegisterFieldsRequired},
		{"empty password", "bob", "a@b.co", "", ErrRegisterFieldsRequired},
		{"bad email", "bob", "not-an-email", "secret1", ErrInvalidEmail},
		{"email without tld", "bob", "a@b", "secret1", ErrInvalidEmail},
		{"short password", "bob", "a@b.co", "12345", ErrWeakPassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(t)

			_, err := svc.Register(context.Background(), tc.username, tc.email, tc.password)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestRegister_Duplicates(t *testing.T) {
	t.Parallel()

	t.Run("email checked proactively", func(t *testing.T) {
		svc, d := newTestService(t)
		d.users.EXPECT().UserTaken(gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).Return(true, true, nil)

		_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1")
		require.ErrorIs(t, err, ErrEmailTaken)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("username checked proactively", func(t *testing.T) {
		svc, d := newTestService(t)
		d.users.EXPECT().UserTaken(gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).Return(false, true, nil)

		_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("unique constraint fallback", func(t *testing.T) {
		svc, d := newTestService(t)
		d.users.EXPECT().UserTaken(gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).Return(false, false, nil)
		d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("storage.postgres.CreateUser: %w", storage.ErrUsernameExists))

		_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestRegister_StorageFailure(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	boom := errors.New("db down")
	d.users.EXPECT().UserTaken(gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).Return(false, false, boom)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1")
	require.ErrorIs(t, err, boom)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	u := testUser(4)
	u.Email = "bob@example.com"
	u.PasswordHash = mustHash(t, "hunter22")

	t.Run("ok", func(t *testing.T) {
		svc, d := newTestService(t)
		d.users.EXPECT().UserByEmail(gomock.Any(), "bob@example.com").Return(u, nil)

		res, err := svc.Login(context.Background(), "BOB@example.com", "hunter22")
		require.NoError(t, err)
		require.NotEmpty(t, res.Token)
		require.Equal(t, u.ID, res.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, d := newTestService(t)
		d.users.EXPECT().UserByEmail(gomock.Any(), "bob@example.com").Return(u, nil)

		_, err := svc.Login(context.Background(), "bob@example.com", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, d := newTestService(t)
		d.users.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)

		_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Login(context.Background(), "", "x")
		require.ErrorIs(t, err, ErrLoginFieldsRequired)
	})

	t.Run("banned user still logs in", func(t *testing.T) {
		svc, d := newTestService(t)
		banned := *u
		banned.IsBanned = true
		d.users.EXPECT().UserByEmail(gomock.Any(), "bob@example.com").Return(&banned, nil)

		res, err := svc.Login(context.Background(), "bob@example.com", "hunter22")
		require.NoError(t, err)
		require.True(t, res.User.IsBanned)
	})
}
