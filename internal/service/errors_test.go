package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_KindAndMessage(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%s: %w", "service.auth.Register", ErrEmailTaken)

	require.ErrorIs(t, err, ErrConflict)
	require.ErrorIs(t, err, ErrEmailTaken)
	require.NotErrorIs(t, err, ErrInvalidArgument)

	var se *Error
	require.True(t, errors.As(err, &se))
	require.Equal(t, "Email already in use.", se.Message)
	require.Equal(t, "Email already in use.", se.Error())
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		kind error
	}{
		{ErrInvalidCredentials, ErrUnauthenticated},
		{ErrInvalidToken, ErrForbidden},
		{ErrBanned, ErrForbidden},
		{ErrThreadNotFound, ErrNotFound},
		{ErrLikeRace, ErrConflict},
		{ErrAvatarsUnavailable, ErrUnavailable},
		{ErrSearchTooShort, ErrInvalidArgument},
	}

	for _, tc := range cases {
		require.ErrorIs(t, tc.err, tc.kind, tc.err.Error())
	}
}
