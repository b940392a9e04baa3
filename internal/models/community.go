package models

import "time"

// Статусы жалоб.
const (
	ReportPending  = "pending"
	ReportResolved = "resolved"
	ReportRejected = "rejected"
)

// DeletedPlaceholder заменяет содержимое удалённого комментария в ленте.
const DeletedPlaceholder = "[deleted]"

type Topic struct {
	ID          int64   `json:"topic_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ThreadCount int64   `json:"thread_count"`
}

type TopicThreadCount struct {
	TopicID     int64 `json:"topic_id"`
	ThreadCount int64 `json:"thread_count"`
}

// Thread — тред форума с живыми счётчиками.
// CommentsCount/LikeCount всегда вычисляются запросом, на строке не хранятся.
type Thread struct {
	ID            int64      `json:"thread_id"`
	UserID        *int64     `json:"user_id"`
	TopicID       int64      `json:"topic_id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
	DeletedBy     *int64     `json:"deleted_by,omitempty"`
	AuthorName    *string    `json:"author_name"`
	CommentsCount int64      `json:"comments_count"`
	LikeCount     int64      `json:"like_count"`
	UserLiked     bool       `json:"user_liked"`
	Categories    []Category `json:"categories,omitempty"`
}

// Comment — комментарий; ParentCommentID задаёт единственное ребро к родителю.
type Comment struct {
	ID              int64      `json:"comment_id"`
	ThreadID        int64      `json:"thread_id"`
	UserID          *int64     `json:"user_id"`
	ParentCommentID *int64     `json:"parent_comment_id"`
	Content         string     `json:"content"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"-"`
	DeletedBy       *int64     `json:"-"`
	IsDeleted       bool       `json:"is_deleted"`
	Username        *string    `json:"username"`
	ThreadTitle     *string    `json:"thread_title,omitempty"`
	LikeCount       int64      `json:"like_count"`
	UserLiked       bool       `json:"user_liked"`
}

// Redact превращает удалённый комментарий в заглушку, сохраняя место в дереве ответов.
func (c *Comment) Redact() {
	c.IsDeleted = true
	c.Content = DeletedPlaceholder
	c.UserID = nil
	c.Username = nil
	c.LikeCount = 0
	c.UserLiked = false
}

type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// ContentEdit — строка истории правок треда или комментария.
type ContentEdit struct {
	ID              int64     `json:"edit_id"`
	TargetID        int64     `json:"target_id"`
	EditorID        *int64    `json:"editor_id"`
	PreviousTitle   *string   `json:"previous_title,omitempty"`
	PreviousContent string    `json:"previous_content"`
	EditReason      *string   `json:"edit_reason"`
	EditedAt        time.Time `json:"edited_at"`
}

type Category struct {
	ID          int64   `json:"category_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type ThreadCategoryMapping struct {
	ThreadID   int64 `json:"thread_id"`
	CategoryID int64 `json:"category_id"`
}

// Report — жалоба ровно на один объект: тред или комментарий.
type Report struct {
	ID               int64      `json:"report_id"`
	ReporterID       *int64     `json:"reporter_id"`
	ThreadID         *int64     `json:"thread_id"`
	CommentID        *int64     `json:"comment_id"`
	Reason           string     `json:"reason"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	ResolvedBy       *int64     `json:"resolved_by"`
	ResolvedAt       *time.Time `json:"resolved_at"`
	ThreadTitle      *string    `json:"thread_title,omitempty"`
	CommentContent   *string    `json:"comment_content,omitempty"`
	ReporterUsername *string    `json:"reporter_username,omitempty"`
}

type SearchHit struct {
	ThreadID      int64     `json:"thread_id"`
	UserID        *int64    `json:"user_id"`
	TopicID       int64     `json:"topic_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	AuthorName    *string   `json:"author_name"`
	CommentCount  int64     `json:"comment_count"`
	LikeCount     int64     `json:"like_count"`
	CategoryNames []string  `json:"category_names"`
}

type CommunityStats struct {
	ThreadCount  int64 `json:"threadCount"`
	CommentCount int64 `json:"commentCount"`
	TotalLikes   int64 `json:"totalLikes"`
}

// CommunityProfile — активность пользователя в сообществе.
type CommunityProfile struct {
	User     PublicUser     `json:"user"`
	Threads  []Thread       `json:"threads"`
	Comments []Comment      `json:"comments"`
	Stats    CommunityStats `json:"stats"`
}
