package models

import "time"

// Допустимые настроения записей дневника и логов настроения.
var Moods = []string{"happy", "sad", "angry", "anxious", "neutral"}

// MoodNeutral — значение по умолчанию для неизвестного настроения.
const MoodNeutral = "neutral"

// IsMood проверяет, что m входит в список Moods.
func IsMood(m string) bool {
	for _, v := range Moods {
		if v == m {
			return true
		}
	}

	return false
}

// JournalEntry — запись дневника. Content равен nil, если запись заблокирована.
type JournalEntry struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"-"`
	Title        string    `json:"title"`
	Content      *string   `json:"content"`
	Mood         string    `json:"mood"`
	IsLocked     bool      `json:"is_locked"`
	CategoryID   *int64    `json:"category_id"`
	CategoryName *string   `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Mask скрывает текст заблокированной записи.
func (e *JournalEntry) Mask() {
	if e.IsLocked {
		e.Content = nil
	}
}

type JournalCategory struct {
	ID   int64  `json:"category_id"`
	Name string `json:"name"`
}
