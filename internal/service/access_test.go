package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_RoleSets(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	ctx := context.Background()

	d.roles.EXPECT().HasAnyRole(gomock.Any(), int64(1), models.RoleAdmin, models.RoleModerator).Return(true, nil)
	ok, err := svc.Authorize(ctx, 1, CapModerate)
	require.NoError(t, err)
	require.True(t, ok)

	d.roles.EXPECT().HasAnyRole(gomock.Any(), int64(1), models.RoleAdmin).Return(false, nil)
	ok, err = svc.Authorize(ctx, 1, CapAdminister)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.Authorize(ctx, 1, Capability(42))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanModify_OwnerSkipsRoleLookup(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	ctx := context.Background()

	ok, err := svc.canModify(ctx, 5, ptr(int64(5)))
	require.NoError(t, err)
	require.True(t, ok)

	d.roles.EXPECT().HasAnyRole(gomock.Any(), int64(5), gomock.Any(), gomock.Any()).Return(false, nil)
	ok, err = svc.canModify(ctx, 5, nil)
	require.NoError(t, err)
	require.False(t, ok)
}
