package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// TokenResponse — ответ POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
}

// User — ответ эндпойнтов /users/users.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ResetTokenResponse — ответ POST /auth/request-password-reset.
type ResetTokenResponse struct {
	ResetToken string `json:"reset_token"`
	Message    string `json:"message"`
}

// MessageResponse — ответы вида {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// Login — вход по паре логин/пароль. Бэкенд принимает форму OAuth2
// password grant (x-www-form-urlencoded), логин нормализуется к нижнему
// регистру.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	const op = "backend.Login"

	form := url.Values{
		"grant_type": {"password"},
		"username":   {strings.ToLower(username)},
		"password":   {password},
	}

	var out TokenResponse
	if err := c.do(ctx, op, http.MethodPost, "/auth/login", nil, form, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

type registerRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	PasswordReminder string `json:"password_reminder"`
}

// Register — регистрация нового пользователя.
func (c *Client) Register(ctx context.Context, username, email, password, reminder string) (*User, error) {
	const op = "backend.Register"

	body := registerRequest{
		Username:         strings.ToLower(username),
		Email:            strings.ToLower(email),
		Password:         password,
		PasswordReminder: reminder,
	}

	var out User
	if err := c.do(ctx, op, http.MethodPost, "/users/users", nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

type resetRequest struct {
	Email            string `json:"email"`
	PasswordReminder string `json:"password_reminder"`
}

// RequestPasswordReset — запрос токена восстановления по email и секретной
// фразе. Токен возвращается в теле ответа (доставка почтой — вне контракта
// бэкенда).
func (c *Client) RequestPasswordReset(ctx context.Context, email, reminder string) (*ResetTokenResponse, error) {
	const op = "backend.RequestPasswordReset"

	body := resetRequest{Email: strings.ToLower(email), PasswordReminder: reminder}

	var out ResetTokenResponse
	if err := c.do(ctx, op, http.MethodPost, "/auth/request-password-reset", nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ResetPassword — смена пароля по токену восстановления.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	const op = "backend.ResetPassword"

	body := resetPasswordRequest{Token: token, NewPassword: newPassword}

	var out MessageResponse
	return c.do(ctx, op, http.MethodPost, "/auth/reset-password", nil, body, &out)
}
