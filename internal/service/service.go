// service содержит бизнес-правила mindwell: аутентификацию, роли,
// форум сообщества, дневник, трекеры настроения и воды, напоминания
// практики (метод Седоны, музыка) и курируемый контент.
//
// Service не хранит состояние запроса и безопасен для конкурентного
// использования, если потокобезопасны переданные хранилища.
// Ошибки для клиента возвращаются как *Error (см. errors.go), всё прочее
// транспорт отдаёт как 500.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/mindwell/internal/config"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/pribylovaa/mindwell/pkg/log"
)

type Service struct {
	users     storage.UserStorage
	roles     storage.RoleStorage
	forum     storage.ForumStorage
	reports   storage.ReportStorage
	search    storage.SearchStorage
	journal   storage.JournalStorage
	moods     storage.MoodStorage
	sedona    storage.SedonaStorage
	water     storage.WaterStorage
	reminders storage.ReminderStorage
	content   storage.ContentStorage

	avatars  storage.AvatarStorage // nil, если S3 не сконфигурирован
	denylist storage.TokenDenylist // nil, если Redis не сконфигурирован

	cfg config.AuthConfig
	now func() time.Time
}

// New создаёт Service поверх основной БД.
func New(st storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		users:     st,
		roles:     st,
		forum:     st,
		reports:   st,
		search:    st,
		journal:   st,
		moods:     st,
		sedona:    st,
		water:     st,
		reminders: st,
		content:   st,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetAvatars подключает хранилище аватаров (опционально).
func (s *Service) SetAvatars(a storage.AvatarStorage) {
	s.avatars = a
}

// SetDenylist подключает список отозванных токенов (опционально).
func (s *Service) SetDenylist(d storage.TokenDenylist) {
	s.denylist = d
}

func (s *Service) clock() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}

	return s.now()
}

// internalErr логирует неожиданную ошибку нижнего слоя и оборачивает её.
func internalErr(ctx context.Context, op string, err error, args ...any) error {
	log.From(ctx).Error("storage_error", append([]any{"op", op, "err", err}, args...)...)
	return fmt.Errorf("%s: %w", op, err)
}
