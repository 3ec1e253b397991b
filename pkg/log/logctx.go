// log — утилиты для прокидывания request-scoped *slog.Logger через context.
// HTTP-мидлвары кладут логгер (уже обогащённый request_id) в контекст запроса,
// нижние слои достают его через From, не таская логгер параметром.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст запроса; это делает Logging-мидлвар.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт request-scoped логгер. Вне запроса (фоновые горутины,
// тесты без мидлваров) возвращается slog.Default() — писать можно всегда.
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}
