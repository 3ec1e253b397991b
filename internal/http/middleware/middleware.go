package middleware

import (
	"net/http"
)

// Middleware — обёртка над http.Handler; сервис собирает из таких обёрток
// цепочку вокруг публичной поверхности (роутер и тесты хендлеров).
type Middleware func(http.Handler) http.Handler

// Chain оборачивает h мидлварами: первый в списке становится внешним,
// то есть порядок перечисления совпадает с порядком прохождения запроса.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// statusWriter запоминает статус и объём ответа для access-записи
// Logging-мидлвара: сам ResponseWriter этого не отдаёт.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	count, err := w.ResponseWriter.Write(p)
	w.count += count
	return count, err
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}
