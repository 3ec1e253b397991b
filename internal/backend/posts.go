package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pribylovaa/go-blog-client/internal/models"
)

// ListPosts — страница постов из GET /posts/posts.
//
// Бэкенд отвечает 404 на пустую коллекцию; для клиента это не ошибка,
// а пустая страница — списки корректно рендерятся без постов.
func (c *Client) ListPosts(ctx context.Context, page, size int) (*models.PostPage, error) {
	const op = "backend.ListPosts"

	query := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}

	var out models.PostPage
	if err := c.do(ctx, op, http.MethodGet, "/posts/posts", query, nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return &models.PostPage{Page: page, Size: size, Posts: []models.Post{}}, nil
		}

		return nil, err
	}

	return &out, nil
}

// GetPost — один пост по id.
func (c *Client) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	const op = "backend.GetPost"

	var out models.Post
	if err := c.do(ctx, op, http.MethodGet, postPath(id), nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

type postRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	IsPublished bool    `json:"is_published"`
	AuthorID    int64   `json:"author_id"`
	TagIDs      []int64 `json:"tag_ids"`
}

// CreatePost — создание поста от имени authorID.
func (c *Client) CreatePost(ctx context.Context, form models.PostForm, authorID int64) (*models.Post, error) {
	const op = "backend.CreatePost"

	body := postRequest{
		Title:       form.Title,
		Content:     form.Content,
		IsPublished: form.IsPublished,
		AuthorID:    authorID,
		TagIDs:      tagIDsOrEmpty(form.TagIDs),
	}

	var out models.Post
	if err := c.do(ctx, op, http.MethodPost, "/posts/posts", nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdatePost — правка поста (бэкенд сам проверяет владельца).
func (c *Client) UpdatePost(ctx context.Context, id int64, form models.PostForm, authorID int64) (*models.Post, error) {
	const op = "backend.UpdatePost"

	body := postRequest{
		Title:       form.Title,
		Content:     form.Content,
		IsPublished: form.IsPublished,
		AuthorID:    authorID,
		TagIDs:      tagIDsOrEmpty(form.TagIDs),
	}

	var out models.Post
	if err := c.do(ctx, op, http.MethodPut, postPath(id), nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeletePost — удаление поста.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	const op = "backend.DeletePost"

	var out MessageResponse
	return c.do(ctx, op, http.MethodDelete, postPath(id), nil, nil, &out)
}

// TogglePublish — публикация/снятие с публикации.
func (c *Client) TogglePublish(ctx context.Context, id int64, publish bool) (*models.Post, error) {
	const op = "backend.TogglePublish"

	query := url.Values{"publish": {strconv.FormatBool(publish)}}

	var out models.Post
	if err := c.do(ctx, op, http.MethodPatch, postPath(id)+"/publish", query, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func postPath(id int64) string {
	return fmt.Sprintf("/posts/posts/%d", id)
}

func tagIDsOrEmpty(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}

	return ids
}
