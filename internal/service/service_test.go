package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/mindwell/internal/config"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fixedNow — «текущее» время во всех unit-тестах пакета.
var fixedNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func testAuthCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:  "unit-test-secret",
		TokenTTL:   24 * time.Hour,
		Issuer:     "mindwell",
		Audience:   []string{"mindwell-api"},
		BcryptCost: bcrypt.MinCost,
	}
}

type testDeps struct {
	users     *mocks.MockUserStorage
	roles     *mocks.MockRoleStorage
	forum     *mocks.MockForumStorage
	reports   *mocks.MockReportStorage
	search    *mocks.MockSearchStorage
	journal   *mocks.MockJournalStorage
	moods     *mocks.MockMoodStorage
	sedona    *mocks.MockSedonaStorage
	water     *mocks.MockWaterStorage
	reminders *mocks.MockReminderStorage
	content   *mocks.MockContentStorage
	avatars   *mocks.MockAvatarStorage
	denylist  *mocks.MockTokenDenylist
}

// newTestService собирает Service на узких моках; avatars и denylist не подключены.
func newTestService(t *testing.T) (*Service, *testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := &testDeps{
		users:     mocks.NewMockUserStorage(ctrl),
		roles:     mocks.NewMockRoleStorage(ctrl),
		forum:     mocks.NewMockForumStorage(ctrl),
		reports:   mocks.NewMockReportStorage(ctrl),
		search:    mocks.NewMockSearchStorage(ctrl),
		journal:   mocks.NewMockJournalStorage(ctrl),
		moods:     mocks.NewMockMoodStorage(ctrl),
		sedona:    mocks.NewMockSedonaStorage(ctrl),
		water:     mocks.NewMockWaterStorage(ctrl),
		reminders: mocks.NewMockReminderStorage(ctrl),
		content:   mocks.NewMockContentStorage(ctrl),
		avatars:   mocks.NewMockAvatarStorage(ctrl),
		denylist:  mocks.NewMockTokenDenylist(ctrl),
	}

	svc := &Service{
		users:     d.users,
		roles:     d.roles,
		forum:     d.forum,
		reports:   d.reports,
		search:    d.search,
		journal:   d.journal,
		moods:     d.moods,
		sedona:    d.sedona,
		water:     d.water,
		reminders: d.reminders,
		content:   d.content,
		cfg:       testAuthCfg(),
		now:       func() time.Time { return fixedNow },
	}

	return svc, d
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func ptr[T any](v T) *T { return &v }

func testUser(id int64, roles ...string) *models.User {
	if len(roles) == 0 {
		roles = []string{models.RoleUser}
	}

	return &models.User{
		ID:          id,
		Username:    fmt.Sprintf("user%d", id),
		Email:       "user@example.com",
		WaterGoalML: 2000,
		Roles:       roles,
		CreatedAt:   fixedNow,
		UpdatedAt:   fixedNow,
	}
}

func TestNew_WiresSingleStorage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)

	svc := New(st, testAuthCfg())
	require.NotNil(t, svc)
	require.Nil(t, svc.avatars)
	require.Nil(t, svc.denylist)

	st.EXPECT().HasAnyRole(gomock.Any(), int64(7), models.RoleAdmin).Return(true, nil)

	ok, err := svc.Authorize(context.Background(), 7, CapAdminister)
	require.NoError(t, err)
	require.True(t, ok)

	av := mocks.NewMockAvatarStorage(ctrl)
	dl := mocks.NewMockTokenDenylist(ctrl)
	svc.SetAvatars(av)
	svc.SetDenylist(dl)
	require.Equal(t, av, svc.avatars)
	require.Equal(t, dl, svc.denylist)
}
