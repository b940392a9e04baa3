// Package middleware содержит net/http-мидлвары HTTP-слоя mindwell.
package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Middleware — обёртка http.Handler. Алиас, чтобы список подходил к chi.Router.Use.
type Middleware = func(http.Handler) http.Handler

// Chain оборачивает h так, что первый мидлвар в списке выполняется первым.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// EdgeOptions описывает общий для всех запросов внешний слой.
type EdgeOptions struct {
	Logger      *slog.Logger
	CORSOrigins []string
	Metrics     *Metrics
	Timeout     time.Duration
}

// Edge возвращает внешний стек в порядке выполнения.
// RequestID стоит до Logging, чтобы id попал в логгер запроса;
// Timeout последний, чтобы дедлайн не тратился на логирование и метрики.
func Edge(o EdgeOptions) []Middleware {
	mws := []Middleware{
		Recover(),
		RequestID(),
		Logging(o.Logger),
		CORS(o.CORSOrigins),
	}
	if o.Metrics != nil {
		mws = append(mws, o.Metrics.Middleware())
	}
	if o.Timeout > 0 {
		mws = append(mws, Timeout(o.Timeout))
	}

	return mws
}

// statusWriter запоминает код ответа и число записанных байт.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(p)
	w.count += n
	return n, err
}

// Status — отданный код; хендлер, который ничего не написал, считается 200.
func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Unwrap нужен http.ResponseController (Flush, дедлайны записи).
func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
