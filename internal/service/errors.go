package service

import (
	"errors"
	"fmt"
)

// Виды ошибок. Транспорт выбирает HTTP-статус по виду через errors.Is.
var (
	// ErrInvalidArgument — некорректный запрос (400).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthenticated — неверные учётные данные (401).
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden — нет прав или токен недействителен (403).
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound — объект не найден (404).
	ErrNotFound = errors.New("not found")
	// ErrConflict — нарушение уникальности (409).
	ErrConflict = errors.New("conflict")
	// ErrUnavailable — опциональная зависимость не сконфигурирована (503).
	ErrUnavailable = errors.New("unavailable")
)

// Error — ошибка с сообщением, которое можно показать клиенту.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func invalid(msg string) *Error { return &Error{Kind: ErrInvalidArgument, Message: msg} }

func notFound(msg string) *Error { return &Error{Kind: ErrNotFound, Message: msg} }

func forbidden(msg string) *Error { return &Error{Kind: ErrForbidden, Message: msg} }

// wrap добавляет op к клиентской ошибке.
func wrap(op string, err error) error { return fmt.Errorf("%s: %w", op, err) }

// Аутентификация и аккаунт.
var (
	ErrRegisterFieldsRequired   = invalid("Username, email, and password are required.")
	ErrLoginFieldsRequired      = invalid("Email and password are required.")
	ErrInvalidEmail             = invalid("Invalid email format.")
	ErrWeakPassword             = invalid("Password must be at least 6 characters long.")
	ErrEmailTaken               = &Error{Kind: ErrConflict, Message: "Email already in use."}
	ErrUsernameTaken            = &Error{Kind: ErrConflict, Message: "Username already taken."}
	ErrInvalidCredentials       = &Error{Kind: ErrUnauthenticated, Message: "Invalid credentials."}
	ErrTokenRequired            = &Error{Kind: ErrUnauthenticated, Message: "Authentication token required."}
	ErrInvalidToken             = forbidden("Invalid or expired token.")
	ErrBanned                   = forbidden("Your account has been banned.")
	ErrRequiresModerator        = forbidden("Forbidden: Requires admin/moderator privileges.")
	ErrRequiresAdmin            = forbidden("Forbidden: Requires admin privileges.")
	ErrNoValidFields            = invalid("No valid fields provided for update.")
	ErrInvalidUsername          = invalid("Invalid username")
	ErrInvalidDate              = invalid("Invalid date format. Use YYYY-MM-DD.")
	ErrInvalidProfileData       = invalid("Invalid profile data")
	ErrUserNotFound             = notFound("User not found")
	ErrInvalidRole              = invalid("Invalid role")
	ErrRoleNotAssigned          = notFound("Role not assigned")
	ErrSelfDelete               = invalid("You cannot delete your own account.")
	ErrSelfDemote               = invalid("You cannot remove your own admin role.")
	ErrSelfBan                  = invalid("You cannot change your own ban status.")
	ErrJournalPasswordShort     = invalid("Journal password must be at least 6 characters long.")
	ErrJournalPasswordNotSet    = invalid("Journal password is not set.")
	ErrCurrentPasswordIncorrect = &Error{Kind: ErrUnauthenticated, Message: "Current password is incorrect."}
	ErrAvatarsUnavailable       = &Error{Kind: ErrUnavailable, Message: "Avatar storage is not configured"}
	ErrAvatarRejected           = invalid("Unsupported avatar type or size")
	ErrAvatarNotUploaded        = notFound("Avatar upload not found")
)

// Сообщество.
var (
	ErrTopicNotFound        = notFound("Topic not found")
	ErrInvalidPage          = invalid("Invalid pagination parameters")
	ErrThreadNotFound       = notFound("Thread not found")
	ErrCommentNotFound      = notFound("Comment not found")
	ErrReportNotFound       = notFound("Report not found")
	ErrInvalidTitle         = invalid("Invalid title")
	ErrInvalidContent       = invalid("Invalid content")
	ErrInvalidTopicID       = invalid("Invalid topic ID")
	ErrEditFieldsRequired   = invalid("Title or content is required")
	ErrContentRequired      = invalid("Content is required")
	ErrCommentRequired      = invalid("Comment content is required")
	ErrInvalidParent        = invalid("Invalid parent comment")
	ErrPermissionDenied     = forbidden("Permission denied")
	ErrAdminOnlyDelete      = forbidden("Only administrators can delete threads")
	ErrLikeRace             = &Error{Kind: ErrConflict, Message: "Like is being updated, please retry"}
	ErrReasonRequired       = invalid("Reason is required")
	ErrReportTargetRequired = invalid("Thread ID or Comment ID is required")
	ErrReportTargetBoth     = invalid("Provide either a thread ID or a comment ID, not both")
	ErrInvalidStatus        = invalid("Invalid status")
	ErrSearchTooShort       = invalid("Search query must be at least 3 characters long")
	ErrCategoriesRequired   = invalid("Category IDs array is required")
	ErrInvalidCategory      = invalid("Invalid category")
)

// Дневник, трекеры, напоминания, контент.
var (
	ErrJournalFieldsRequired   = invalid("Title and content are required.")
	ErrLockNeedsPassword       = invalid("Set a journal password before locking entries.")
	ErrEntryNotFound           = notFound("Journal entry not found")
	ErrEntryNotLocked          = invalid("Entry is not locked.")
	ErrIncorrectJournalPass    = &Error{Kind: ErrUnauthenticated, Message: "Incorrect journal password."}
	ErrInvalidMood             = invalid("Invalid mood")
	ErrInvalidIntensity        = invalid("Mood intensity must be between 1 and 5")
	ErrInvalidRange            = invalid("Invalid date range")
	ErrInvalidAmount           = invalid("Amount must be a positive number")
	ErrInvalidGoal             = invalid("Goal must be a positive number")
	ErrInvalidReminderType     = invalid("Invalid reminder type")
	ErrReminderTitleRequired   = invalid("Title is required")
	ErrInvalidReminderTime     = invalid("Invalid time format. Use HH:MM")
	ErrInvalidFrequency        = invalid("Frequency must be a positive number of hours")
	ErrReminderNotFound        = notFound("Reminder not found")
	ErrMeditationRequired      = invalid("Title and audio URL are required.")
	ErrInvalidDuration         = invalid("Duration must be a positive number of seconds")
	ErrMeditationNotFound      = notFound("Meditation not found")
	ErrResourceRequired        = invalid("Category and title are required.")
	ErrInvalidResourceCategory = invalid("Invalid resource category")
	ErrResourceNotFound        = notFound("Resource not found")
)
