package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/pribylovaa/go-blog-client/internal/errors"
	"github.com/pribylovaa/go-blog-client/internal/models"
	"github.com/pribylovaa/go-blog-client/internal/session"
)

// loginResponse — ответ успешного входа. Токен бэкенда наружу не отдаётся:
// браузер держит только непрозрачную сессионную куку.
type loginResponse struct {
	UserID int64 `json:"user_id"`
}

// Login — POST /auth/login.
//
// Успешный вход создаёт серверную сессию с бейрер-токеном бэкенда и ставит
// httpOnly-куку с её идентификатором. TTL сессии ограничен сверху exp
// самого токена, чтобы сессия не переживала токен.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, errInvalidBody)
		return
	}

	if err := h.Validate.Struct(in); err != nil {
		h.fail(w, r, err)
		return
	}

	tok, err := h.Backend.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err) // не destroySession: сессии ещё нет.
		return
	}

	expires := session.TokenExpiry(tok.AccessToken, h.Cfg.SessionTTL, time.Now())

	sid := uuid.NewString()
	sess := session.Session{
		Token:     tok.AccessToken,
		UserID:    tok.UserID,
		ExpiresAt: expires,
	}

	if err := h.Sessions.Save(r.Context(), sid, sess); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.CookieName,
		Value:    sid,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, loginResponse{UserID: tok.UserID})
}

// Logout — POST /auth/logout. Идемпотентен: выход без сессии — тоже успех.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.destroySession(w, r)
	w.WriteHeader(http.StatusNoContent)
}

// Register — POST /auth/register. Создаёт аккаунт; автоматического входа
// нет, фронт отправляет пользователя на страницу логина.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in models.RegisterRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, errInvalidBody)
		return
	}

	if err := h.Validate.Struct(in); err != nil {
		h.fail(w, r, err)
		return
	}

	user, err := h.Backend.Register(r.Context(), in.Username, in.Email, in.Password, in.PasswordReminder)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// RequestPasswordReset — POST /auth/request-password-reset.
// Бэкенд сверяет секретную фразу и выдаёт токен восстановления.
func (h *Handlers) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var in models.PasswordResetRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, errInvalidBody)
		return
	}

	if err := h.Validate.Struct(in); err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.Backend.RequestPasswordReset(r.Context(), in.Email, in.PasswordReminder)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ResetPassword — POST /auth/reset-password.
func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in models.ResetPasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, errInvalidBody)
		return
	}

	if err := h.Validate.Struct(in); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.Backend.ResetPassword(r.Context(), in.Token, in.NewPassword); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
