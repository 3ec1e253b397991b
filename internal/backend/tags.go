package backend

import (
	"context"
	"net/http"

	"github.com/pribylovaa/go-blog-client/internal/models"
)

// ListTags — все теги, включая служебный "None" (фильтрация — на вызывающей
// стороне: пустой список тегов тоже валиден).
func (c *Client) ListTags(ctx context.Context) ([]models.Tag, error) {
	const op = "backend.ListTags"

	var out []models.Tag
	if err := c.do(ctx, op, http.MethodGet, "/tags/tags", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

type tagRequest struct {
	Name string `json:"name"`
}

// CreateTag — создание тега. Дубликат имени бэкенд отдаёт как
// ErrAlreadyExists.
func (c *Client) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	const op = "backend.CreateTag"

	var out models.Tag
	if err := c.do(ctx, op, http.MethodPost, "/tags/tags", nil, tagRequest{Name: name}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
