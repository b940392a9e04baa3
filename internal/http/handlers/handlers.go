// handlers — REST-обработчики mindwell поверх service.Service.
// Каждый обработчик разбирает запрос, вызывает один метод сервиса
// и отдаёт JSON; ошибки уходят через apierrors.WriteError.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/mindwell/internal/http/middleware"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/service"
)

// maxBodyBytes ограничивает размер JSON-тела запроса.
const maxBodyBytes = 1 << 20

const dateLayout = "2006-01-02"

// Ошибки разбора запроса на транспортном уровне.
var (
	errInvalidBody  = &service.Error{Kind: service.ErrInvalidArgument, Message: "Invalid request body"}
	errInvalidID    = &service.Error{Kind: service.ErrInvalidArgument, Message: "Invalid ID"}
	errInvalidPage  = service.ErrInvalidPage
	errInvalidRange = service.ErrInvalidRange
)

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// messageResponse — ответ, состоящий только из сообщения.
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeJSON читает тело запроса в value. Пустое тело — пустой объект:
// обязательность полей проверяет сервис со своими сообщениями.
func decodeJSON(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(value); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidBody
	}

	return nil
}

// identity — личность, положенная middleware.Authenticate.
// Маршруты без Authenticate получают ErrTokenRequired.
func identity(r *http.Request) (*models.Identity, error) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		return nil, service.ErrTokenRequired
	}

	return id, nil
}

// pathID разбирает положительный int64 из параметра маршрута.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}

	return id, nil
}

// queryInt разбирает неотрицательное число из query; для пустого значения def.
func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errInvalidPage
	}

	return n, nil
}

// queryDate разбирает YYYY-MM-DD (UTC); для пустого значения нулевое время.
func queryDate(r *http.Request, name string) (time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return time.Time{}, nil
	}

	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, service.ErrInvalidDate
	}

	return d, nil
}

// queryTime разбирает RFC3339 или YYYY-MM-DD; для пустого значения nil.
func queryTime(r *http.Request, name string) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(dateLayout, v); err == nil {
		return &t, nil
	}

	return nil, errInvalidRange
}
