// session — серверное хранилище сессий веб-клиента.
//
// Браузер клиента держит только непрозрачный cookie с идентификатором
// сессии; bearer-токен бэкенда и user_id живут в сторе на стороне сервиса
// (аналог persistent key-value хранилища браузера). Сторы взаимозаменяемы:
// in-memory для локального запуска и Redis для нескольких инстансов,
// выбор — через конфигурацию.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound — сессия не найдена или истекла.
// Транспорт обычно отвечает 401 и сбрасывает cookie.
var ErrNotFound = errors.New("session not found")

// Session — авторизационное состояние одного браузера.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired — истекла ли сессия к моменту now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Store — хранилище сессий.
//
// Реализации обязаны быть потокобезопасными: к стору одновременно
// обращаются все запросы сервиса.
type Store interface {
	// Save сохраняет сессию под идентификатором id до s.ExpiresAt.
	Save(ctx context.Context, id string, s Session) error
	// Get возвращает сессию или ErrNotFound (в т.ч. для истёкшей).
	Get(ctx context.Context, id string) (Session, error)
	// Delete удаляет сессию; отсутствие сессии ошибкой не считается.
	Delete(ctx context.Context, id string) error
	// Close освобождает ресурсы стора (фоновая уборка, соединения).
	Close() error
}

type ctxKey struct{}

// IntoContext кладёт сессию в контекст запроса (это делает мидлвар).
func IntoContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext достаёт сессию текущего запроса; ok == false для анонима.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
