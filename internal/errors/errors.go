// errors стандартизирует ответы об ошибках HTTP-слоя веб-клиента.
// На вход принимается ошибка любого слоя (клиент бэкенда, валидация,
// контекст), на выход — корректный HTTP-статус и краткое безопасное
// message без утечки деталей апстрима.
//
// Источник истинности по маппингу: сентинел-ошибки internal/backend и
// FieldErrors из internal/validate.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/go-blog-client/internal/backend"
	"github.com/pribylovaa/go-blog-client/internal/session"
	"github.com/pribylovaa/go-blog-client/internal/validate"
)

// APIError — единый формат ошибки для фронта.
// Code — короткий стабильный код для машиночитаемой обработки.
// Fields — построчные ошибки валидации формы (только для invalid_argument).
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
// Location — путь, на который фронту стоит перейти (сейчас только /login
// при сброшенной сессии).
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Location  string            `json:"location,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// LoginLocation — куда отправлять фронт после сброса сессии.
const LoginLocation = "/login"

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal, чтобы не
//     замаскировать баг ответом "200 OK" с телом ошибки;
//   - FieldErrors валидации - 400 с построчными ошибками;
//   - сентинелы бэкенда - соответствующий статус (401 дополнительно несёт
//     location на логин);
//   - контекстные ошибки - 504;
//   - всё прочее - 500/internal без деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, newResponse("internal", "internal error")
	}

	var fields validate.FieldErrors
	if stderrors.As(err, &fields) {
		resp := newResponse("invalid_argument", "validation failed")
		resp.Error.Fields = fields
		return http.StatusBadRequest, resp
	}

	switch {
	case stderrors.Is(err, backend.ErrUnauthenticated), stderrors.Is(err, session.ErrNotFound):
		resp := newResponse("unauthenticated", "unauthenticated")
		resp.Error.Location = LoginLocation
		return http.StatusUnauthorized, resp
	case stderrors.Is(err, backend.ErrPermissionDenied):
		return http.StatusForbidden, newResponse("permission_denied", "permission denied")
	case stderrors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound, newResponse("not_found", "not found")
	case stderrors.Is(err, backend.ErrAlreadyExists):
		return http.StatusConflict, newResponse("already_exists", "already exists")
	case stderrors.Is(err, backend.ErrInvalidArgument):
		return http.StatusBadRequest, newResponse("invalid_argument", "invalid argument")
	case stderrors.Is(err, backend.ErrUnavailable):
		return http.StatusServiceUnavailable, newResponse("unavailable", "backend unavailable")
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, newResponse("deadline_exceeded", "deadline exceeded")
	case stderrors.Is(err, context.Canceled):
		return statusClientClosedRequest, newResponse("canceled", "canceled")
	default:
		return http.StatusInternalServerError, newResponse("internal", "internal error")
	}
}

// Нестандартный код, часто используемый для «клиент закрыл соединение».
const statusClientClosedRequest = 499

// IsUnauthenticated — истинно для ошибок, которые маппятся в 401.
// HTTP-слой по ним дополнительно гасит клиентскую сессию.
func IsUnauthenticated(err error) bool {
	return stderrors.Is(err, backend.ErrUnauthenticated) || stderrors.Is(err, session.ErrNotFound)
}

// WriteError — хелпер для HTTP-хендлеров: пишет корректный статус/тело,
// добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func newResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: message}}
}
