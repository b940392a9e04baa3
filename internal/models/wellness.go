package models

import "time"

type MoodLog struct {
	ID        int64     `json:"log_id"`
	UserID    int64     `json:"user_id"`
	Mood      string    `json:"mood"`
	Note      *string   `json:"note"`
	Intensity int       `json:"mood_intensity"`
	LoggedAt  time.Time `json:"logged_at"`
}

// MoodSummary — агрегаты по всем логам настроения без привязки к пользователям.
type MoodSummary struct {
	TotalEntries     int64            `json:"total_entries"`
	AverageMoodScore *float64         `json:"average_mood_score"`
	MoodCounts       map[string]int64 `json:"mood_counts"`
}

type WaterLog struct {
	ID       int64     `json:"log_id"`
	UserID   int64     `json:"user_id"`
	AmountML int       `json:"amount_ml"`
	LoggedAt time.Time `json:"logged_at"`
}

type WaterLogDetail struct {
	ID       int64     `json:"log_id"`
	AmountML int       `json:"amount_ml"`
	LoggedAt time.Time `json:"logged_at"`
	Hour     int       `json:"hour"`
	Minute   int       `json:"minute"`
}

// WaterDay — суммарное потребление за сутки (UTC).
type WaterDay struct {
	TotalIntake int        `json:"total_intake"`
	LogCount    int        `json:"log_count"`
	FirstLog    *time.Time `json:"first_log"`
	LastLog     *time.Time `json:"last_log"`
}

type WaterProgress struct {
	Goal       int `json:"goal"`
	Current    int `json:"current"`
	Percentage int `json:"percentage"`
	Remaining  int `json:"remaining"`
}

type WaterStats struct {
	AverageDailyIntake int `json:"average_daily_intake"`
	MaxDailyIntake     int `json:"max_daily_intake"`
	DaysLogged         int `json:"days_logged"`
	GoalAchievedDays   int `json:"goal_achieved_days"`
}

// Типы напоминаний.
const (
	ReminderMindfulness = "mindfulness"
	ReminderWater       = "water"
	ReminderMood        = "mood"
)

var ReminderTypes = []string{ReminderMindfulness, ReminderWater, ReminderMood}

func IsReminderType(t string) bool {
	for _, v := range ReminderTypes {
		if v == t {
			return true
		}
	}

	return false
}

// Reminder — настройка напоминания; расписание исполняет клиент.
// Time хранится как TIME и отдаётся строкой HH:MM:SS.
type Reminder struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"-"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Time           string    `json:"time"`
	FrequencyHours *int      `json:"frequency_hours"`
	Enabled        bool      `json:"enabled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SedonaExercise — шаг-за-шагом упражнение метода Седоны.
type SedonaExercise struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Steps       []string `json:"steps"`
}

// SedonaLog — отметка о пройденной сессии с необязательной рефлексией.
type SedonaLog struct {
	ID             int64     `json:"log_id"`
	UserID         int64     `json:"user_id"`
	SessionAt      time.Time `json:"session_timestamp"`
	ReflectionText *string   `json:"reflection_text"`
}
