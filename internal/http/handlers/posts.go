package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pribylovaa/go-blog-client/internal/backend"
	apierrors "github.com/pribylovaa/go-blog-client/internal/errors"
	"github.com/pribylovaa/go-blog-client/internal/models"
	"github.com/pribylovaa/go-blog-client/internal/postlist"
	"github.com/pribylovaa/go-blog-client/internal/session"
	logctx "github.com/pribylovaa/go-blog-client/pkg/log"
)

// listResponse — страница списка постов для фронта.
//
// error — одна строка о неудавшейся загрузке: список при этом рендерится
// пустым, страница остаётся рабочей.
type listResponse struct {
	Posts      []models.PostCard `json:"posts"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
	Tag        string            `json:"tag,omitempty"`
	Tags       []models.Tag      `json:"tags"`
	Error      string            `json:"error,omitempty"`
}

// ListPosts — GET /posts?tag=&page=.
//
// Публичная лента: все опубликованные посты, клиентская пагинация по 10,
// опциональный фильтр по тегу. Недоступный бэкенд не роняет страницу —
// отдаётся пустой список с однострочной ошибкой.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	viewerID := viewerID(r)

	page, err := h.Backend.ListPosts(r.Context(), 1, h.Cfg.PublishedFetchSize)
	if err != nil {
		// Протухший токен гасит сессию независимо от того, какая операция
		// его обнаружила; деградация до пустого списка — только для прочих
		// сбоев загрузки.
		if apierrors.IsUnauthenticated(err) {
			h.fail(w, r, err)
			return
		}

		logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelWarn,
			"posts_fetch_failed",
			slog.String("err", err.Error()),
		)
		h.writeList(w, r, nil, viewerID, "Failed to load posts")
		return
	}

	published, _ := postlist.Partition(page.Posts, viewerID)
	h.writeList(w, r, published, viewerID, "")
}

// MyPosts — GET /my-posts?tag=&page=.
//
// Черновики текущего зрителя. Требует сессии.
func (h *Handlers) MyPosts(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	page, err := h.Backend.ListPosts(r.Context(), 1, h.Cfg.DraftsFetchSize)
	if err != nil {
		if apierrors.IsUnauthenticated(err) {
			h.fail(w, r, err)
			return
		}

		logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelWarn,
			"drafts_fetch_failed",
			slog.String("err", err.Error()),
		)
		h.writeList(w, r, nil, sess.UserID, "Failed to load posts")
		return
	}

	_, drafts := postlist.Partition(page.Posts, sess.UserID)
	h.writeList(w, r, drafts, sess.UserID, "")
}

// writeList прогоняет коллекцию через состояние списка (фильтр по тегу,
// зажим страницы) и отдаёт карточки текущей страницы.
func (h *Handlers) writeList(w http.ResponseWriter, r *http.Request, posts []models.Post, viewerID int64, loadErr string) {
	list := postlist.NewList(posts)
	list.SetTag(r.URL.Query().Get("tag"))

	if raw := r.URL.Query().Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			list.SetPage(p)
		}
	}

	tags := h.visibleTags(r)

	writeJSON(w, http.StatusOK, listResponse{
		Posts:      models.CardsFromPosts(list.Page(), viewerID),
		Page:       list.PageNum(),
		TotalPages: list.TotalPages(),
		Total:      list.Len(),
		Tag:        list.Tag(),
		Tags:       tags,
		Error:      loadErr,
	})
}

// visibleTags — теги для фильтра; неудачная загрузка оставляет фильтр пустым.
func (h *Handlers) visibleTags(r *http.Request) []models.Tag {
	tags, err := h.Backend.ListTags(r.Context())
	if err != nil {
		logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelWarn,
			"tags_fetch_failed",
			slog.String("err", err.Error()),
		)
		return []models.Tag{}
	}

	return models.VisibleTags(tags)
}

// GetPost — GET /posts/{id}.
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	post, err := h.Backend.GetPost(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CardFromPost(*post, viewerID(r)))
}

// CreatePost — POST /posts. Требует сессии; автором становится зритель.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var in models.PostForm
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, errInvalidBody)
		return
	}

	if err := h.Validate.Struct(in); err != nil {
		h.fail(w, r, err)
		return
	}

	post, err := h.Backend.CreatePost(r.Context(), in, sess.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.CardFromPost(*post, sess.UserID))
}

// UpdatePost — PUT /posts/{id}. Право редактирования проверяет бэкенд
// по токену, клиент лишь прокидывает запрос.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var in models.PostForm
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, errInvalidBody)
		return
	}

	if err := h.Validate.Struct(in); err != nil {
		h.fail(w, r, err)
		return
	}

	post, err := h.Backend.UpdatePost(r.Context(), id, in, sess.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CardFromPost(*post, sess.UserID))
}

// DeletePost — DELETE /posts/{id}. Идемпотентен на стороне фронта:
// повторное удаление уже удалённого поста бэкенд отклонит 404, и это
// честный ответ.
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.Backend.DeletePost(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TogglePublish — PATCH /posts/{id}/publish?publish=true|false.
func (h *Handlers) TogglePublish(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	publish, err := strconv.ParseBool(r.URL.Query().Get("publish"))
	if err != nil {
		h.fail(w, r, backend.ErrInvalidArgument)
		return
	}

	post, err := h.Backend.TogglePublish(r.Context(), id, publish)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CardFromPost(*post, sess.UserID))
}

// viewerID — id зрителя из сессии; 0 для анонима.
func viewerID(r *http.Request) int64 {
	if sess, ok := session.FromContext(r.Context()); ok {
		return sess.UserID
	}

	return 0
}
