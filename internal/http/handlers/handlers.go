package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-blog-client/internal/backend"
	apierrors "github.com/pribylovaa/go-blog-client/internal/errors"
	"github.com/pribylovaa/go-blog-client/internal/models"
	"github.com/pribylovaa/go-blog-client/internal/session"
	"github.com/pribylovaa/go-blog-client/internal/validate"
	logctx "github.com/pribylovaa/go-blog-client/pkg/log"
)

// Backend — операции REST API блога, которые нужны хендлерам.
// Интерфейс позволяет подменять клиента фейком в тестах.
type Backend interface {
	Login(ctx context.Context, username, password string) (*backend.TokenResponse, error)
	Register(ctx context.Context, username, email, password, reminder string) (*backend.User, error)
	RequestPasswordReset(ctx context.Context, email, reminder string) (*backend.ResetTokenResponse, error)
	ResetPassword(ctx context.Context, token, newPassword string) error

	ListPosts(ctx context.Context, page, size int) (*models.PostPage, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, form models.PostForm, authorID int64) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, form models.PostForm, authorID int64) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	TogglePublish(ctx context.Context, id int64, publish bool) (*models.Post, error)

	ListTags(ctx context.Context) ([]models.Tag, error)
	CreateTag(ctx context.Context, name string) (*models.Tag, error)

	SubmitRating(ctx context.Context, postID, userID int64, value float64) (*backend.RatingResponse, error)
}

// Config — параметры поведения хендлеров.
type Config struct {
	CookieName string
	SessionTTL time.Duration
	// Ширина выборки у бэкенда под клиентскую пагинацию.
	PublishedFetchSize int
	DraftsFetchSize    int
}

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	Backend  Backend
	Sessions session.Store
	Validate *validate.Validator
	Cfg      Config
}

func New(b Backend, store session.Store, cfg Config) *Handlers {
	if cfg.CookieName == "" {
		cfg.CookieName = "sid"
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.PublishedFetchSize <= 0 {
		cfg.PublishedFetchSize = 50
	}
	if cfg.DraftsFetchSize <= 0 {
		cfg.DraftsFetchSize = 100
	}

	return &Handlers{
		Backend:  b,
		Sessions: store,
		Validate: validate.New(),
		Cfg:      cfg,
	}
}

// errInvalidBody — локальная ошибка разбора тела запроса, маппится в 400.
var errInvalidBody = fmt.Errorf("invalid request body: %w", backend.ErrInvalidArgument)

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// fail — единая точка выдачи ошибки. При 401 от бэкенда токен в сессии
// уже недействителен: сессия уничтожается, кука гасится, фронт получает
// location на страницу входа.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	if apierrors.IsUnauthenticated(err) {
		h.destroySession(w, r)
	}

	apierrors.WriteError(w, r, err)
}

// destroySession удаляет сессию из стора (если кука есть) и гасит куку.
func (h *Handlers) destroySession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.Cfg.CookieName); err == nil && cookie.Value != "" {
		if derr := h.Sessions.Delete(r.Context(), cookie.Value); derr != nil {
			logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelWarn,
				"session_delete_failed",
				slog.String("err", derr.Error()),
			)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// requireSession — сессия обязательна; её отсутствие — 401 c редиректом
// на логин.
func (h *Handlers) requireSession(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.fail(w, r, backend.ErrUnauthenticated)
		return session.Session{}, false
	}

	return sess, true
}

// pathID — числовой {id} из пути.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, backend.ErrInvalidArgument
	}

	return id, nil
}
