package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestIntegration_CreateUser_AssignsUserRole(t *testing.T) {
	st := startPostgres(t)

	u := mustUser(t, st, "alice")
	require.NotZero(t, u.ID)
	require.Equal(t, []string{models.RoleUser}, u.Roles)
	require.Equal(t, 2000, u.WaterGoalML)
	require.False(t, u.JournalPasswordSet)

	byEmail, err := st.UserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
}

func TestIntegration_CreateUser_Duplicates(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	mustUser(t, st, "alice")

	_, err := st.CreateUser(ctx, &models.User{Username: "other", Email: "alice@example.com", PasswordHash: "h"})
	require.ErrorIs(t, err, storage.ErrEmailExists)

	_, err = st.CreateUser(ctx, &models.User{Username: "alice", Email: "new@example.com", PasswordHash: "h"})
	require.ErrorIs(t, err, storage.ErrUsernameExists)

	emailTaken, usernameTaken, err := st.UserTaken(ctx, "alice@example.com", "nobody", 0)
	require.NoError(t, err)
	require.True(t, emailTaken)
	require.False(t, usernameTaken)
}

func TestIntegration_UserByID_NotFound(t *testing.T) {
	st := startPostgres(t)

	_, err := st.UserByID(context.Background(), 999999)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_UpdateUser_Partial(t *testing.T) {
	st := startPostgres(t)
	u := mustUser(t, st, "bob")

	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	got, err := st.UpdateUser(context.Background(), u.ID, storage.UserUpdate{
		FullName:    ptr("Bob Builder"),
		DateOfBirth: &dob,
		WaterGoalML: ptr(2500),
	})
	require.NoError(t, err)
	require.Equal(t, "Bob Builder", *got.FullName)
	require.Equal(t, "1990-05-17", got.DateOfBirth.Format("2006-01-02"))
	require.Equal(t, 2500, got.WaterGoalML)
	require.Equal(t, "bob", got.Username)

	_, err = st.UpdateUser(context.Background(), u.ID, storage.UserUpdate{WaterGoalML: ptr(0)})
	require.ErrorIs(t, err, storage.ErrInvalidValue)
}

func TestIntegration_Roles(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	u := mustUser(t, st, "mod")

	ok, err := st.HasAnyRole(ctx, u.ID, models.RoleAdmin, models.RoleModerator)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, st.AssignRole(ctx, u.ID, models.RoleModerator))
	require.NoError(t, st.AssignRole(ctx, u.ID, models.RoleModerator))

	roles, err := st.UserRoles(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{models.RoleModerator, models.RoleUser}, roles)

	ok, err = st.HasAnyRole(ctx, u.ID, models.RoleAdmin, models.RoleModerator)
	require.NoError(t, err)
	require.True(t, ok)

	require.ErrorIs(t, st.AssignRole(ctx, u.ID, "superuser"), storage.ErrNotFound)
	require.NoError(t, st.RemoveRole(ctx, u.ID, models.RoleModerator))
	require.ErrorIs(t, st.RemoveRole(ctx, u.ID, models.RoleModerator), storage.ErrNotFound)
}

func TestIntegration_DeleteUser_KeepsForumContent(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	u := mustUser(t, st, "leaver")

	th, err := st.CreateThread(ctx, &models.Thread{UserID: &u.ID, TopicID: 1, Title: "T", Content: "C"})
	require.NoError(t, err)
	_, err = st.LogWater(ctx, u.ID, 250)
	require.NoError(t, err)

	require.NoError(t, st.DeleteUser(ctx, u.ID))
	require.ErrorIs(t, st.DeleteUser(ctx, u.ID), storage.ErrNotFound)

	got, err := st.ThreadByID(ctx, th.ID, 0)
	require.NoError(t, err)
	require.Nil(t, got.UserID)
	require.Nil(t, got.AuthorName)
}

func TestIntegration_SetBanned(t *testing.T) {
	st := startPostgres(t)
	u := mustUser(t, st, "troll")

	got, err := st.SetBanned(context.Background(), u.ID, true)
	require.NoError(t, err)
	require.True(t, got.IsBanned)

	_, err = st.SetBanned(context.Background(), 424242, true)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_CreateUser_ContextDeadline(t *testing.T) {
	st := startPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	_, err := st.CreateUser(ctx, &models.User{Username: "late", Email: "late@example.com", PasswordHash: "h"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
