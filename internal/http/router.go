package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/mindwell/internal/http/handlers"
	"github.com/pribylovaa/mindwell/internal/http/middleware"
	"github.com/pribylovaa/mindwell/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger      *slog.Logger
	Timeout     time.Duration
	BasePath    string // например, "/api"; если пустой, роуты регистрируются на корне.
	CORSOrigins []string
	// Metrics — HTTP-метрики; nil отключает их сбор.
	Metrics *middleware.Metrics
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Через chi, а не Chain снаружи: метрикам нужен шаблон маршрута.
	root.Use(middleware.Edge(middleware.EdgeOptions{
		Logger:      opts.Logger,
		CORSOrigins: opts.CORSOrigins,
		Metrics:     opts.Metrics,
		Timeout:     opts.Timeout,
	})...)

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, svc)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
// Всё, кроме регистрации и входа, требует Bearer-токен.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service) {
	// auth
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(svc))

		moderator := middleware.RequireRole(svc, service.CapModerate)

		r.Post("/auth/logout", h.Logout)

		// users
		r.Route("/users", func(r chi.Router) {
			r.Get("/me", h.Me)
			r.Put("/me", h.UpdateMe)
			r.Put("/me/journal-password", h.SetJournalPassword)
			r.Post("/me/journal-password/verify", h.VerifyJournalPassword)
			r.Post("/me/journal-password/remove", h.RemoveJournalPassword)
			r.Post("/me/avatar/presign", h.AvatarPresign)
			r.Post("/me/avatar/confirm", h.AvatarConfirm)

			r.With(moderator).Get("/list", h.ListUsers)
			r.With(moderator).Delete("/{userID}", h.DeleteUser)
			r.With(moderator).Get("/{userID}/roles", h.UserRoles)
			r.With(moderator).Post("/{userID}/roles", h.AssignRole)
			r.With(moderator).Delete("/{userID}/roles", h.RemoveRole)
			r.With(moderator).Put("/{userID}/ban-status", h.SetBanStatus)
		})

		// community
		r.Route("/community", func(r chi.Router) {
			r.Get("/topics", h.Topics)
			r.Get("/topics/{topicID}", h.Topic)
			r.Get("/topic-thread-counts", h.TopicThreadCounts)
			r.Get("/topics/{topicID}/threads", h.ThreadsByTopic)
			r.Post("/topics/{topicID}/threads", h.CreateThread)

			r.Get("/threads/{threadID}", h.Thread)
			r.Patch("/threads/{threadID}", h.EditThread)
			r.Delete("/threads/{threadID}", h.DeleteThread)
			r.With(moderator).Get("/threads/{threadID}/edits", h.ThreadEdits)
			r.Post("/threads/{threadID}/like", h.ToggleThreadLike)
			r.Get("/threads/{threadID}/comments", h.Comments)
			r.Post("/threads/{threadID}/comments", h.CreateComment)
			r.Post("/threads/{threadID}/categories", h.AddThreadCategories)

			r.Patch("/comments/{commentID}", h.EditComment)
			r.Delete("/comments/{commentID}", h.DeleteComment)
			r.With(moderator).Get("/comments/{commentID}/edits", h.CommentEdits)
			r.Post("/comments/{commentID}/like", h.ToggleCommentLike)

			r.Get("/categories", h.Categories)

			r.Post("/reports", h.CreateReport)
			r.With(moderator).Get("/reports", h.Reports)
			r.With(moderator).Patch("/reports/{reportID}", h.ResolveReport)

			r.Get("/users/{userID}/profile", h.CommunityProfile)
			r.Get("/search", h.Search)
		})

		// journal
		r.Route("/journal", func(r chi.Router) {
			r.Get("/entries", h.JournalEntries)
			r.Post("/entries", h.CreateJournalEntry)
			r.Get("/entries/{entryID}", h.JournalEntry)
			r.Put("/entries/{entryID}", h.UpdateJournalEntry)
			r.Delete("/entries/{entryID}", h.DeleteJournalEntry)
			r.Post("/entries/{entryID}/unlock", h.UnlockJournalEntry)
			r.Get("/categories", h.JournalCategories)
		})

		// moods
		r.Post("/moods", h.LogMood)
		r.Get("/moods", h.MoodLogs)
		r.Get("/moods/summary", h.MoodSummary)

		// water
		r.Route("/water", func(r chi.Router) {
			r.Get("/progress", h.WaterProgress)
			r.Get("/logs/detailed", h.WaterLogsDetailed)
			r.Post("/logs", h.LogWater)
			r.Get("/goal", h.WaterGoal)
			r.Put("/goal", h.SetWaterGoal)
			r.Get("/stats", h.WaterStats)
		})

		// reminders
		r.Get("/reminders", h.Reminders)
		r.Post("/reminders", h.CreateReminder)
		r.Patch("/reminders/{type}/{reminderID}", h.UpdateReminder)
		r.Delete("/reminders/{type}/{reminderID}", h.DeleteReminder)

		// practices
		r.Route("/sedona", func(r chi.Router) {
			r.Get("/exercises", h.SedonaExercises)
			r.Post("/logs", h.CreateSedonaLog)
			r.Get("/logs", h.SedonaLogs)
		})
		r.Get("/music/playlist", h.MusicPlaylists)
		r.Get("/music/playlists", h.MusicPlaylists)

		// content
		r.Get("/quotes", h.DailyQuote)
		r.Get("/emergency/contacts", h.EmergencyContacts)
		r.Get("/emergency/resources", h.EmergencyResources)

		r.Get("/meditations", h.Meditations)
		r.With(moderator).Post("/meditations", h.CreateMeditation)
		r.With(moderator).Put("/meditations/{meditationID}", h.UpdateMeditation)
		r.With(moderator).Delete("/meditations/{meditationID}", h.DeleteMeditation)

		r.Get("/resources", h.Resources)
		r.With(moderator).Post("/resources", h.CreateResource)
		r.With(moderator).Put("/resources/{resourceID}", h.UpdateResource)
		r.With(moderator).Delete("/resources/{resourceID}", h.DeleteResource)
	})
}
