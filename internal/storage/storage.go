// storage описывает контракты слоя данных mindwell и его sentinel-ошибки.
// Реализации: postgres (основная БД), minio (аватары), redis (отозванные токены).
package storage

//go:generate mockgen -source=storage.go -destination=../../mocks/storage.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/mindwell/internal/models"
)

var (
	// ErrNotFound — запись не найдена или мягко удалена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (23505).
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmailExists — занят email (users_email_key).
	ErrEmailExists = fmt.Errorf("email %w", ErrAlreadyExists)
	// ErrUsernameExists — занято имя пользователя (users_username_key).
	ErrUsernameExists = fmt.Errorf("username %w", ErrAlreadyExists)
	// ErrInvalidReference — ссылка на несуществующую строку (23503).
	ErrInvalidReference = errors.New("invalid reference")
	// ErrInvalidValue — значение отвергнуто CHECK/NOT NULL/парсером типа.
	ErrInvalidValue = errors.New("invalid value")
)

// UserUpdate — частичное обновление профиля. nil-поле не меняется.
type UserUpdate struct {
	Username              *string
	FullName              *string
	Email                 *string
	DateOfBirth           *time.Time
	Gender                *string
	Bio                   *string
	ProfileImage          *string
	AvatarKey             *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	WaterGoalML           *int
}

// Empty сообщает, что обновлять нечего.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.FullName == nil && u.Email == nil && u.DateOfBirth == nil &&
		u.Gender == nil && u.Bio == nil && u.ProfileImage == nil && u.AvatarKey == nil &&
		u.EmergencyContactName == nil && u.EmergencyContactPhone == nil && u.WaterGoalML == nil
}

// UserStorage — учётные записи и профиль.
type UserStorage interface {
	// CreateUser сохраняет пользователя и выдаёт ему роль user в одной транзакции.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UserByID(ctx context.Context, id int64) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserTaken проверяет занятость email и username, исключая пользователя exceptID.
	UserTaken(ctx context.Context, email, username string, exceptID int64) (emailTaken, usernameTaken bool, err error)
	UpdateUser(ctx context.Context, id int64, upd UserUpdate) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// DeleteUser удаляет дневник, логи настроения и воды, затем саму строку пользователя.
	DeleteUser(ctx context.Context, id int64) error
	SetBanned(ctx context.Context, id int64, banned bool) (*models.User, error)
	// SetJournalPasswordHash ставит хэш пароля дневника; nil снимает его
	// и разблокирует все записи пользователя.
	SetJournalPasswordHash(ctx context.Context, id int64, hash *string) error
}

// RoleStorage — роли пользователей. Источник истины — user_role_mappings.
type RoleStorage interface {
	UserRoles(ctx context.Context, userID int64) ([]string, error)
	HasAnyRole(ctx context.Context, userID int64, roles ...string) (bool, error)
	// AssignRole идемпотентна; неизвестная роль — ErrNotFound.
	AssignRole(ctx context.Context, userID int64, role string) error
	// RemoveRole возвращает ErrNotFound, если роль не была назначена.
	RemoveRole(ctx context.Context, userID int64, role string) error
}

// Page — окно выборки. Limit == 0 означает «без ограничения».
type Page struct {
	Limit  uint64
	Offset uint64
}

// ForumStorage — топики, треды, комментарии, лайки, правки и категории.
// viewerID нужен только для флага user_liked.
type ForumStorage interface {
	Topics(ctx context.Context) ([]models.Topic, error)
	TopicByID(ctx context.Context, id int64) (*models.Topic, error)
	TopicThreadCounts(ctx context.Context) ([]models.TopicThreadCount, error)

	ThreadsByTopic(ctx context.Context, topicID, viewerID int64, page Page) ([]models.Thread, error)
	// ThreadByID возвращает только не удалённый тред вместе с категориями.
	ThreadByID(ctx context.Context, id, viewerID int64) (*models.Thread, error)
	CreateThread(ctx context.Context, t *models.Thread) (*models.Thread, error)
	// EditThread пишет строку истории и обновляет тред в одной транзакции.
	EditThread(ctx context.Context, id, editorID int64, title, content string, reason *string) (*models.Thread, error)
	SoftDeleteThread(ctx context.Context, id, actorID int64) error
	ThreadEdits(ctx context.Context, threadID int64) ([]models.ContentEdit, error)
	ToggleThreadLike(ctx context.Context, threadID, userID int64) (*models.LikeResult, error)

	// CommentsByThread возвращает и удалённые комментарии; их заглушки готовит сервис.
	CommentsByThread(ctx context.Context, threadID, viewerID int64) ([]models.Comment, error)
	// CommentByID возвращает строку независимо от deleted_at.
	CommentByID(ctx context.Context, id int64) (*models.Comment, error)
	CreateComment(ctx context.Context, c *models.Comment) (*models.Comment, error)
	EditComment(ctx context.Context, id, editorID int64, content string, reason *string) (*models.Comment, error)
	SoftDeleteComment(ctx context.Context, id, actorID int64) error
	CommentEdits(ctx context.Context, commentID int64) ([]models.ContentEdit, error)
	ToggleCommentLike(ctx context.Context, commentID, userID int64) (*models.LikeResult, error)

	Categories(ctx context.Context) ([]models.Category, error)
	AddThreadCategories(ctx context.Context, threadID int64, categoryIDs []int64) ([]models.ThreadCategoryMapping, error)

	// UserActivity собирает публичную активность пользователя в сообществе.
	UserActivity(ctx context.Context, userID, viewerID int64) (*models.CommunityProfile, error)
}

// ReportStorage — жалобы на контент.
type ReportStorage interface {
	CreateReport(ctx context.Context, r *models.Report) (*models.Report, error)
	// Reports исключает жалобы на удалённый контент.
	Reports(ctx context.Context, status string) ([]models.Report, error)
	ResolveReport(ctx context.Context, id int64, status string, resolverID int64) (*models.Report, error)
}

// SearchStorage — полнотекстовый (ILIKE) поиск по тредам и комментариям.
type SearchStorage interface {
	SearchThreads(ctx context.Context, term string) ([]models.SearchHit, error)
}

// JournalUpdate — полная замена редактируемых полей записи.
type JournalUpdate struct {
	Title      string
	Content    string
	Mood       string
	IsLocked   bool
	CategoryID *int64
}

// JournalStorage — записи дневника. Все операции ограничены владельцем.
type JournalStorage interface {
	JournalEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error)
	JournalEntry(ctx context.Context, userID, id int64) (*models.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, e *models.JournalEntry) (*models.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, userID, id int64, upd JournalUpdate) (*models.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, userID, id int64) error
	JournalCategories(ctx context.Context) ([]models.JournalCategory, error)
}

// MoodStorage — логи настроения.
type MoodStorage interface {
	CreateMoodLog(ctx context.Context, m *models.MoodLog) (*models.MoodLog, error)
	// MoodLogs фильтрует по logged_at; nil-граница не ограничивает.
	MoodLogs(ctx context.Context, userID int64, from, to *time.Time) ([]models.MoodLog, error)
	MoodSummary(ctx context.Context) (*models.MoodSummary, error)
}

// SedonaStorage — журнал сессий метода Седоны.
type SedonaStorage interface {
	CreateSedonaLog(ctx context.Context, userID int64, reflection *string) (*models.SedonaLog, error)
	// SedonaLogs отдаёт сессии пользователя, новые первыми.
	SedonaLogs(ctx context.Context, userID int64) ([]models.SedonaLog, error)
}

// WaterStorage — логи воды и дневная цель. Сутки считаются в UTC.
type WaterStorage interface {
	WaterDay(ctx context.Context, userID int64, day time.Time) (*models.WaterDay, error)
	WaterLogsDetailed(ctx context.Context, userID int64, day time.Time) ([]models.WaterLogDetail, error)
	// LogWater проверяет существование пользователя и пишет лог в одной транзакции.
	LogWater(ctx context.Context, userID int64, amountML int) (*models.WaterLog, error)
	WaterGoal(ctx context.Context, userID int64) (int, error)
	SetWaterGoal(ctx context.Context, userID int64, goalML int) (int, error)
	// DailyWaterTotals возвращает сумму за каждый день диапазона [from, to], где были логи.
	DailyWaterTotals(ctx context.Context, userID int64, from, to time.Time) ([]int, error)
}

// ReminderUpdate — частичное обновление напоминания.
type ReminderUpdate struct {
	Title          *string
	Time           *string
	Enabled        *bool
	FrequencyHours *int
}

func (u ReminderUpdate) Empty() bool {
	return u.Title == nil && u.Time == nil && u.Enabled == nil && u.FrequencyHours == nil
}

type ReminderStorage interface {
	Reminders(ctx context.Context, userID int64) ([]models.Reminder, error)
	CreateReminder(ctx context.Context, r *models.Reminder) (*models.Reminder, error)
	UpdateReminder(ctx context.Context, userID int64, typ string, id int64, upd ReminderUpdate) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, userID int64, typ string, id int64) error
}

// MeditationUpdate и ResourceUpdate — частичные обновления справочников.
type MeditationUpdate struct {
	Title           *string
	Description     *string
	Theme           *string
	AudioURL        *string
	DurationSeconds *int
}

func (u MeditationUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Theme == nil && u.AudioURL == nil && u.DurationSeconds == nil
}

type ResourceUpdate struct {
	Category    *string
	Title       *string
	Description *string
	ContactInfo *string
	Link        *string
}

func (u ResourceUpdate) Empty() bool {
	return u.Category == nil && u.Title == nil && u.Description == nil && u.ContactInfo == nil && u.Link == nil
}

// ContentStorage — курируемые медитации и профессиональные ресурсы.
type ContentStorage interface {
	Meditations(ctx context.Context) ([]models.Meditation, error)
	CreateMeditation(ctx context.Context, m *models.Meditation) (*models.Meditation, error)
	UpdateMeditation(ctx context.Context, id int64, upd MeditationUpdate) (*models.Meditation, error)
	DeleteMeditation(ctx context.Context, id int64) error

	Resources(ctx context.Context) ([]models.Resource, error)
	CreateResource(ctx context.Context, r *models.Resource) (*models.Resource, error)
	UpdateResource(ctx context.Context, id int64, upd ResourceUpdate) (*models.Resource, error)
	DeleteResource(ctx context.Context, id int64) error
}

// Storage — весь контракт основной БД.
type Storage interface {
	UserStorage
	RoleStorage
	ForumStorage
	ReportStorage
	SearchStorage
	JournalStorage
	MoodStorage
	SedonaStorage
	WaterStorage
	ReminderStorage
	ContentStorage
	Ping(ctx context.Context) error
	Close()
}
