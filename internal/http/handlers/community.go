package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/mindwell/internal/errors"
	"github.com/pribylovaa/mindwell/internal/models"
)

type createThreadRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type editThreadRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Reason  *string `json:"reason"`
}

type createCommentRequest struct {
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parentCommentId"`
}

type editCommentRequest struct {
	Content string  `json:"content"`
	Reason  *string `json:"reason"`
}

type threadCategoriesRequest struct {
	CategoryIDs []int64 `json:"categoryIds"`
}

type createReportRequest struct {
	Reason    string `json:"reason"`
	ThreadID  *int64 `json:"threadId"`
	CommentID *int64 `json:"commentId"`
}

type resolveReportRequest struct {
	Status string `json:"status"`
}

type threadResponse struct {
	Message string         `json:"message"`
	Thread  *models.Thread `json:"thread"`
}

type commentResponse struct {
	Message string          `json:"message"`
	Comment *models.Comment `json:"comment"`
}

type categoriesResponse struct {
	Message    string                         `json:"message"`
	Categories []models.ThreadCategoryMapping `json:"categories"`
}

type reportResponse struct {
	Message string         `json:"message"`
	Report  *models.Report `json:"report"`
}

func (h *Handlers) Topics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.Topics(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, topics)
}

func (h *Handlers) Topic(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathID(r, "topicID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	topic, err := h.svc.Topic(r.Context(), topicID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, topic)
}

func (h *Handlers) TopicThreadCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.TopicThreadCounts(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}

// ThreadsByTopic — GET /topics/{topicID}/threads?page=&limit=.
func (h *Handlers) ThreadsByTopic(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	topicID, err := pathID(r, "topicID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := queryInt(r, "page", 1)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	threads, err := h.svc.ThreadsByTopic(r.Context(), id.UserID, topicID, page, limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, threads)
}

func (h *Handlers) CreateThread(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	topicID, err := pathID(r, "topicID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in createThreadRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	thread, err := h.svc.CreateThread(r.Context(), id.UserID, topicID, in.Title, in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, threadResponse{Message: "Thread created successfully", Thread: thread})
}

func (h *Handlers) Thread(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	threadID, err := pathID(r, "threadID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	thread, err := h.svc.Thread(r.Context(), id.UserID, threadID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, thread)
}

func (h *Handlers) EditThread(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	threadID, err := pathID(r, "threadID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in editThreadRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	thread, err := h.svc.EditThread(r.Context(), id.UserID, threadID, in.Title, in.Content, in.Reason)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, threadResponse{Message: "Thread updated successfully", Thread: thread})
}

func (h *Handlers) DeleteThread(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	threadID, err := pathID(r, "threadID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteThread(r.Context(), id.UserID, threadID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Thread deleted successfully"})
}

func (h *Handlers) ThreadEdits(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	threadID, err := pathID(r, "threadID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	edits, err := h.svc.ThreadEdits(r.Context(), id.UserID, threadID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, edits)
}

func (h *Handlers) ToggleThreadLike(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	threadID, err := pathID(r, "threadID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ToggleThreadLike(r.Context(), id.UserID, threadID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Comments отдаёт плоский хронологический список; удалённые заменены заглушками.
func (h *Handlers) Comments(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	threadID, err := pathID(r, "threadID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	comments, err := h.svc.Comments(r.Context(), id.UserID, threadID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	threadID, err := pathID(r, "threadID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in createCommentRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	comment, err := h.svc.CreateComment(r.Context(), id.UserID, threadID, in.Content, in.ParentCommentID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *Handlers) EditComment(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	commentID, err := pathID(r, "commentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in editCommentRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	comment, err := h.svc.EditComment(r.Context(), id.UserID, commentID, in.Content, in.Reason)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentResponse{Message: "Comment updated successfully", Comment: comment})
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	commentID, err := pathID(r, "commentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteComment(r.Context(), id.UserID, commentID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Comment deleted successfully"})
}

func (h *Handlers) CommentEdits(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	commentID, err := pathID(r, "commentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	edits, err := h.svc.CommentEdits(r.Context(), id.UserID, commentID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, edits)
}

func (h *Handlers) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	commentID, err := pathID(r, "commentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ToggleCommentLike(r.Context(), id.UserID, commentID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cats)
}

func (h *Handlers) AddThreadCategories(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	threadID, err := pathID(r, "threadID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in threadCategoriesRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	added, err := h.svc.AddThreadCategories(r.Context(), id.UserID, threadID, in.CategoryIDs)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesResponse{Message: "Categories added successfully", Categories: added})
}

func (h *Handlers) CommunityProfile(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	userID, err := pathID(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	profile, err := h.svc.CommunityProfile(r.Context(), id.UserID, userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *Handlers) CreateReport(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in createReportRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	report, err := h.svc.CreateReport(r.Context(), id.UserID, in.Reason, in.ThreadID, in.CommentID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, reportResponse{Message: "Report submitted successfully", Report: report})
}

// Reports — GET /reports?status=, по умолчанию pending.
func (h *Handlers) Reports(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	reports, err := h.svc.Reports(r.Context(), id.UserID, r.URL.Query().Get("status"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reports)
}

func (h *Handlers) ResolveReport(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	reportID, err := pathID(r, "reportID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in resolveReportRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	report, err := h.svc.ResolveReport(r.Context(), id.UserID, reportID, in.Status)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reportResponse{Message: "Report resolved successfully", Report: report})
}

func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	hits, err := h.svc.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, hits)
}
