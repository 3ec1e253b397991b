package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/go-blog-client/internal/session"
	logctx "github.com/pribylovaa/go-blog-client/pkg/log"
)

// SessionLoader читает сессионную куку, поднимает сессию из стора и кладёт
// её в контекст запроса. Отсутствующая, протухшая или неизвестная кука
// не является ошибкой: запрос идёт дальше анонимным, решение о доступе
// принимает хендлер.
func SessionLoader(store session.Store, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := store.Get(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					// Стор недоступен — логируем, но не валим запрос:
					// публичные страницы обязаны работать без сессии.
					logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelWarn,
						"session_load_failed",
						slog.String("err", err.Error()),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := session.IntoContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
