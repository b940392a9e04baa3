package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/pribylovaa/mindwell/pkg/log"
)

const minSearchLen = 3

func (s *Service) Topics(ctx context.Context) ([]models.Topic, error) {
	const op = "service.community.Topics"

	topics, err := s.forum.Topics(ctx)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return topics, nil
}

func (s *Service) Topic(ctx context.Context, id int64) (*models.Topic, error) {
	const op = "service.community.Topic"

	return s.topicByID(ctx, op, id)
}

func (s *Service) TopicThreadCounts(ctx context.Context) ([]models.TopicThreadCount, error) {
	const op = "service.community.TopicThreadCounts"

	counts, err := s.forum.TopicThreadCounts(ctx)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return counts, nil
}

// ThreadsByTopic возвращает страницу тредов топика, новые первыми.
// limit == 0 отдаёт весь список; page начинается с 1.
func (s *Service) ThreadsByTopic(ctx context.Context, viewerID, topicID int64, page, limit int) ([]models.Thread, error) {
	const op = "service.community.ThreadsByTopic"

	if page < 0 || limit < 0 {
		return nil, wrap(op, ErrInvalidPage)
	}
	if page == 0 {
		page = 1
	}
	// OFFSET в Postgres ограничен bigint.
	if limit > 0 && page-1 > math.MaxInt64/limit {
		return nil, wrap(op, ErrInvalidPage)
	}

	if _, err := s.topicByID(ctx, op, topicID); err != nil {
		return nil, err
	}

	p := storage.Page{Limit: uint64(limit), Offset: uint64((page - 1) * limit)}
	threads, err := s.forum.ThreadsByTopic(ctx, topicID, viewerID, p)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return threads, nil
}

func (s *Service) Thread(ctx context.Context, viewerID, id int64) (*models.Thread, error) {
	const op = "service.community.Thread"

	return s.threadByID(ctx, op, id, viewerID)
}

func (s *Service) CreateThread(ctx context.Context, actorID, topicID int64, title, content string) (*models.Thread, error) {
	const op = "service.community.CreateThread"

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, wrap(op, ErrInvalidTitle)
	}
	if content == "" {
		return nil, wrap(op, ErrInvalidContent)
	}

	if _, err := s.topicByID(ctx, op, topicID); err != nil {
		return nil, err
	}

	thread, err := s.forum.CreateThread(ctx, &models.Thread{
		UserID:  &actorID,
		TopicID: topicID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			return nil, wrap(op, ErrInvalidTopicID)
		}

		return nil, internalErr(ctx, op, err)
	}

	log.From(ctx).Info("thread_created",
		slog.String("op", op),
		slog.Int64("thread_id", thread.ID),
		slog.Int64("user_id", actorID),
	)

	return thread, nil
}

// EditThread правит тред автора или модератора с записью в историю.
// Пустое поле заменяется текущим значением.
func (s *Service) EditThread(ctx context.Context, actorID, id int64, title, content string, reason *string) (*models.Thread, error) {
	const op = "service.community.EditThread"

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" && content == "" {
		return nil, wrap(op, ErrEditFieldsRequired)
	}

	current, err := s.threadByID(ctx, op, id, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.requireModify(ctx, op, actorID, current.UserID); err != nil {
		return nil, err
	}

	if title == "" {
		title = current.Title
	}
	if content == "" {
		content = current.Content
	}

	thread, err := s.forum.EditThread(ctx, id, actorID, title, content, trimReason(reason))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrThreadNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	return thread, nil
}

// DeleteThread мягко удаляет тред. Только admin.
func (s *Service) DeleteThread(ctx context.Context, actorID, id int64) error {
	const op = "service.community.DeleteThread"

	if err := s.require(ctx, actorID, CapAdminister, ErrAdminOnlyDelete); err != nil {
		return wrap(op, err)
	}

	if err := s.forum.SoftDeleteThread(ctx, id, actorID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return wrap(op, ErrThreadNotFound)
		}

		return internalErr(ctx, op, err)
	}

	log.From(ctx).Info("thread_deleted", slog.String("op", op), slog.Int64("thread_id", id), slog.Int64("actor_id", actorID))

	return nil
}

func (s *Service) ThreadEdits(ctx context.Context, actorID, id int64) ([]models.ContentEdit, error) {
	const op = "service.community.ThreadEdits"

	if err := s.require(ctx, actorID, CapModerate, ErrRequiresModerator); err != nil {
		return nil, wrap(op, err)
	}

	edits, err := s.forum.ThreadEdits(ctx, id)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return edits, nil
}

func (s *Service) ToggleThreadLike(ctx context.Context, actorID, id int64) (*models.LikeResult, error) {
	const op = "service.community.ToggleThreadLike"

	res, err := s.forum.ToggleThreadLike(ctx, id, actorID)
	if err != nil {
		return nil, s.likeErr(ctx, op, err, ErrThreadNotFound)
	}

	return res, nil
}

// Comments возвращает плоский список комментариев треда по времени.
// Удалённые комментарии остаются заглушками.
func (s *Service) Comments(ctx context.Context, viewerID, threadID int64) ([]models.Comment, error) {
	const op = "service.community.Comments"

	if _, err := s.threadByID(ctx, op, threadID, viewerID); err != nil {
		return nil, err
	}

	comments, err := s.forum.CommentsByThread(ctx, threadID, viewerID)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	for i := range comments {
		if comments[i].DeletedAt != nil || comments[i].IsDeleted {
			comments[i].Redact()
		}
	}

	return comments, nil
}

func (s *Service) CreateComment(ctx context.Context, actorID, threadID int64, content string, parentID *int64) (*models.Comment, error) {
	const op = "service.community.CreateComment"

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, wrap(op, ErrCommentRequired)
	}

	if _, err := s.threadByID(ctx, op, threadID, actorID); err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.forum.CommentByID(ctx, *parentID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, wrap(op, ErrInvalidParent)
		case err != nil:
			return nil, internalErr(ctx, op, err)
		case parent.DeletedAt != nil || parent.ThreadID != threadID:
			return nil, wrap(op, ErrInvalidParent)
		}
	}

	comment, err := s.forum.CreateComment(ctx, &models.Comment{
		ThreadID:        threadID,
		UserID:          &actorID,
		ParentCommentID: parentID,
		Content:         content,
	})
	if err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			return nil, wrap(op, ErrThreadNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	return comment, nil
}

func (s *Service) EditComment(ctx context.Context, actorID, id int64, content string, reason *string) (*models.Comment, error) {
	const op = "service.community.EditComment"

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, wrap(op, ErrContentRequired)
	}

	current, err := s.liveComment(ctx, op, id)
	if err != nil {
		return nil, err
	}

	if err := s.requireModify(ctx, op, actorID, current.UserID); err != nil {
		return nil, err
	}

	comment, err := s.forum.EditComment(ctx, id, actorID, content, trimReason(reason))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrCommentNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	return comment, nil
}

// DeleteComment мягко удаляет комментарий автора или модератора.
func (s *Service) DeleteComment(ctx context.Context, actorID, id int64) error {
	const op = "service.community.DeleteComment"

	current, err := s.liveComment(ctx, op, id)
	if err != nil {
		return err
	}

	if err := s.requireModify(ctx, op, actorID, current.UserID); err != nil {
		return err
	}

	if err := s.forum.SoftDeleteComment(ctx, id, actorID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return wrap(op, ErrCommentNotFound)
		}

		return internalErr(ctx, op, err)
	}

	log.From(ctx).Info("comment_deleted", slog.String("op", op), slog.Int64("comment_id", id), slog.Int64("actor_id", actorID))

	return nil
}

func (s *Service) CommentEdits(ctx context.Context, actorID, id int64) ([]models.ContentEdit, error) {
	const op = "service.community.CommentEdits"

	if err := s.require(ctx, actorID, CapModerate, ErrRequiresModerator); err != nil {
		return nil, wrap(op, err)
	}

	edits, err := s.forum.CommentEdits(ctx, id)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return edits, nil
}

func (s *Service) ToggleCommentLike(ctx context.Context, actorID, id int64) (*models.LikeResult, error) {
	const op = "service.community.ToggleCommentLike"

	res, err := s.forum.ToggleCommentLike(ctx, id, actorID)
	if err != nil {
		return nil, s.likeErr(ctx, op, err, ErrCommentNotFound)
	}

	return res, nil
}

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "service.community.Categories"

	cats, err := s.forum.Categories(ctx)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return cats, nil
}

// AddThreadCategories привязывает категории к треду; повторная привязка ничего не меняет.
func (s *Service) AddThreadCategories(ctx context.Context, actorID, threadID int64, categoryIDs []int64) ([]models.ThreadCategoryMapping, error) {
	const op = "service.community.AddThreadCategories"

	if len(categoryIDs) == 0 {
		return nil, wrap(op, ErrCategoriesRequired)
	}

	thread, err := s.threadByID(ctx, op, threadID, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.requireModify(ctx, op, actorID, thread.UserID); err != nil {
		return nil, err
	}

	mappings, err := s.forum.AddThreadCategories(ctx, threadID, categoryIDs)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			return nil, wrap(op, ErrInvalidCategory)
		}

		return nil, internalErr(ctx, op, err)
	}

	return mappings, nil
}

// CommunityProfile — публичная активность пользователя.
func (s *Service) CommunityProfile(ctx context.Context, viewerID, userID int64) (*models.CommunityProfile, error) {
	const op = "service.community.CommunityProfile"

	profile, err := s.forum.UserActivity(ctx, userID, viewerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrUserNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	return profile, nil
}

// CreateReport принимает жалобу ровно на один живой объект.
func (s *Service) CreateReport(ctx context.Context, actorID int64, reason string, threadID, commentID *int64) (*models.Report, error) {
	const op = "service.community.CreateReport"

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, wrap(op, ErrReasonRequired)
	}

	switch {
	case threadID == nil && commentID == nil:
		return nil, wrap(op, ErrReportTargetRequired)
	case threadID != nil && commentID != nil:
		return nil, wrap(op, ErrReportTargetBoth)
	case threadID != nil:
		if _, err := s.threadByID(ctx, op, *threadID, actorID); err != nil {
			return nil, err
		}
	default:
		if _, err := s.liveComment(ctx, op, *commentID); err != nil {
			return nil, err
		}
	}

	report, err := s.reports.CreateReport(ctx, &models.Report{
		ReporterID: &actorID,
		ThreadID:   threadID,
		CommentID:  commentID,
		Reason:     reason,
		Status:     models.ReportPending,
	})
	if err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			if threadID != nil {
				return nil, wrap(op, ErrThreadNotFound)
			}
			return nil, wrap(op, ErrCommentNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	log.From(ctx).Info("report_created", slog.String("op", op), slog.Int64("report_id", report.ID))

	return report, nil
}

// Reports — очередь жалоб для модераторов. Пустой статус означает pending.
func (s *Service) Reports(ctx context.Context, actorID int64, status string) ([]models.Report, error) {
	const op = "service.community.Reports"

	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		status = models.ReportPending
	}
	switch status {
	case models.ReportPending, models.ReportResolved, models.ReportRejected:
	default:
		return nil, wrap(op, ErrInvalidStatus)
	}

	if err := s.require(ctx, actorID, CapModerate, ErrRequiresModerator); err != nil {
		return nil, wrap(op, err)
	}

	reports, err := s.reports.Reports(ctx, status)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return reports, nil
}

func (s *Service) ResolveReport(ctx context.Context, actorID, id int64, status string) (*models.Report, error) {
	const op = "service.community.ResolveReport"

	status = strings.ToLower(strings.TrimSpace(status))
	if status != models.ReportResolved && status != models.ReportRejected {
		return nil, wrap(op, ErrInvalidStatus)
	}

	if err := s.require(ctx, actorID, CapModerate, ErrRequiresModerator); err != nil {
		return nil, wrap(op, err)
	}

	report, err := s.reports.ResolveReport(ctx, id, status, actorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrReportNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	log.From(ctx).Info("report_resolved",
		slog.String("op", op),
		slog.Int64("report_id", id),
		slog.String("status", status),
		slog.Int64("actor_id", actorID),
	)

	return report, nil
}

// Search ищет подстроку в живых тредах и их комментариях.
func (s *Service) Search(ctx context.Context, query string) ([]models.SearchHit, error) {
	const op = "service.community.Search"

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchLen {
		return nil, wrap(op, ErrSearchTooShort)
	}

	hits, err := s.search.SearchThreads(ctx, query)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return hits, nil
}

func (s *Service) topicByID(ctx context.Context, op string, id int64) (*models.Topic, error) {
	topic, err := s.forum.TopicByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrTopicNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	return topic, nil
}

func (s *Service) threadByID(ctx context.Context, op string, id, viewerID int64) (*models.Thread, error) {
	thread, err := s.forum.ThreadByID(ctx, id, viewerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrThreadNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	return thread, nil
}

// liveComment возвращает комментарий, если он существует и не удалён.
func (s *Service) liveComment(ctx context.Context, op string, id int64) (*models.Comment, error) {
	comment, err := s.forum.CommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrCommentNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	if comment.DeletedAt != nil {
		return nil, wrap(op, ErrCommentNotFound)
	}

	return comment, nil
}

func (s *Service) requireModify(ctx context.Context, op string, actorID int64, ownerID *int64) error {
	ok, err := s.canModify(ctx, actorID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		log.From(ctx).Warn("modify_denied", slog.String("op", op), slog.Int64("actor_id", actorID))
		return wrap(op, ErrPermissionDenied)
	}

	return nil
}

func (s *Service) likeErr(ctx context.Context, op string, err, notFoundErr error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return wrap(op, notFoundErr)
	case errors.Is(err, storage.ErrAlreadyExists):
		log.From(ctx).Warn("like_race", slog.String("op", op))
		return wrap(op, ErrLikeRace)
	}

	return internalErr(ctx, op, err)
}

func trimReason(reason *string) *string {
	if reason == nil {
		return nil
	}

	r := strings.TrimSpace(*reason)
	if r == "" {
		return nil
	}

	return &r
}
