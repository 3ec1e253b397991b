// backend — REST-клиент внешнего сервиса блога.
//
// Вся бизнес-логика (персистентность, авторизация, агрегация оценок,
// теги) живёт на бэкенде; клиент лишь ходит в его HTTP API. Bearer-токен
// не хранится в клиенте: он читается из контекста запроса (туда его кладёт
// session-мидлвар) и подставляется в Authorization на каждый исходящий
// вызов.
//
// Маппинг ошибок выполняется в одной точке: HTTP-статус апстрима ->
// сентинел из errors.go, завёрнутый с именем операции.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/go-blog-client/internal/session"
)

// Client — клиент REST API бэкенда. Безопасен для конкурентного
// использования: состояние ограничено базовым URL и http.Client.
type Client struct {
	baseURL   string
	httpc     *http.Client
	userAgent string
}

// New создаёт клиент. timeout ограничивает каждый исходящий вызов,
// если у контекста запроса нет более раннего дедлайна.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		httpc:     &http.Client{Timeout: timeout},
		userAgent: "blog-client",
	}
}

// apiDetail — тело ошибки бэкенда: {"detail": "..."}.
type apiDetail struct {
	Detail string `json:"detail"`
}

// do выполняет вызов: собирает URL, сериализует тело, подставляет
// Authorization из сессии в контексте, декодирует ответ в out (если он
// задан) и маппит неуспешные статусы в сентинел-ошибки.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	contentType := ""

	switch b := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(b.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if sess, ok := session.FromContext(ctx); ok && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: %w", op, ctx.Err())
		}

		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s: %w", op, statusError(resp))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	return nil
}

// statusError — маппинг статуса апстрима в сентинел. Тело ошибки
// используется только для различения конфликтов уникальности, которые
// бэкенд исторически отдаёт как 400 "... already exists".
func statusError(resp *http.Response) error {
	var detail apiDetail
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&detail)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthenticated
	case resp.StatusCode == http.StatusForbidden:
		return ErrPermissionDenied
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrAlreadyExists
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnprocessableEntity:
		if strings.Contains(strings.ToLower(detail.Detail), "already exists") {
			return ErrAlreadyExists
		}

		return ErrInvalidArgument
	case resp.StatusCode >= 500:
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}
}
