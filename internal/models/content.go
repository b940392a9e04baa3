package models

import "time"

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type EmergencyContact struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type EmergencyResource struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

type Meditation struct {
	ID              int64     `json:"meditation_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	Theme           *string   `json:"theme"`
	AudioURL        string    `json:"audio_url"`
	DurationSeconds *int      `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Категории профессиональных ресурсов.
var ResourceCategories = []string{"Therapy", "Hotlines", "Crisis Centers"}

func IsResourceCategory(c string) bool {
	for _, v := range ResourceCategories {
		if v == c {
			return true
		}
	}

	return false
}

type Resource struct {
	ID          int64     `json:"resource_id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ContactInfo *string   `json:"contact_info"`
	Link        *string   `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Track struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	URL      string `json:"url"`
}

// Playlist — статичный плейлист музыкальной терапии.
type Playlist struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Tracks      []Track `json:"tracks"`
}
