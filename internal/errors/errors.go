// errors стандартизирует ответы об ошибках HTTP-слоя.
// Вход — ошибка сервисного слоя, выход:
//   - HTTP-статус по виду ошибки (service.ErrInvalidArgument и т.д.);
//   - безопасное message: текст *service.Error или "Internal server error".
//
// Детали внутренних ошибок клиенту не отдаются, их пишет лог.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/mindwell/internal/service"
	"github.com/pribylovaa/mindwell/pkg/log"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

const internalMessage = "Internal server error"

// ErrorResponse — тело ответа об ошибке.
// RequestID прокидывается из X-Request-Id, если есть.
type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ToHTTP конвертирует ошибку в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500, чтобы не маскировать баг;
//   - *service.Error — статус по Kind, message как есть;
//   - отмена/дедлайн контекста — 499/504;
//   - прочее — 500 без деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{Message: internalMessage}
	}

	var se *service.Error
	if stderrors.As(err, &se) {
		return statusFor(se.Kind), ErrorResponse{Message: se.Message}
	}

	switch {
	case stderrors.Is(err, context.Canceled):
		return StatusClientClosedRequest, ErrorResponse{Message: "Request canceled"}
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorResponse{Message: "Request timed out"}
	}

	return http.StatusInternalServerError, ErrorResponse{Message: internalMessage}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет статус и тело, добавляет request_id из заголовка запроса.
// Ошибки с кодом 5xx логируются с полным текстом.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.RequestID = rid
	}

	if status >= http.StatusInternalServerError && err != nil {
		log.From(r.Context()).Error("request_failed",
			slog.Int("status", status),
			slog.String("err", err.Error()),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// statusFor — маппинг вида сервисной ошибки на HTTP:
//   - ErrInvalidArgument -> 400
//   - ErrUnauthenticated -> 401
//   - ErrForbidden -> 403
//   - ErrNotFound -> 404
//   - ErrConflict -> 409
//   - ErrUnavailable -> 503
//   - прочее -> 500
func statusFor(kind error) int {
	switch {
	case stderrors.Is(kind, service.ErrInvalidArgument):
		return http.StatusBadRequest
	case stderrors.Is(kind, service.ErrUnauthenticated):
		return http.StatusUnauthorized
	case stderrors.Is(kind, service.ErrForbidden):
		return http.StatusForbidden
	case stderrors.Is(kind, service.ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(kind, service.ErrConflict):
		return http.StatusConflict
	case stderrors.Is(kind, service.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
