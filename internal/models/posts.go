// models — модели данных веб-клиента блога.
//
// Пакет разделяет две группы типов:
//   - сущности бэкенда (Post, Author, Tag, PostPage) — в том виде, в котором
//     их отдаёт REST API сервиса блога, с нормализацией «грязных» полей
//     (см. PublishFlag, Timestamp) на границе десериализации;
//   - формы публичной поверхности клиента (forms.go) и карточки для
//     отображения (cards.go).
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Author — автор поста в ответе бэкенда.
type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Post — пост в том виде, в котором его отдаёт бэкенд.
//
// AverageRating и UserRating — указатели: отсутствие значения означает
// «оценок ещё нет» и отличается от нуля.
type Post struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	Author        Author      `json:"author"`
	Tags          []Tag       `json:"tags"`
	IsPublished   PublishFlag `json:"is_published"`
	AverageRating *float64    `json:"average_rating,omitempty"`
	UserRating    *float64    `json:"user_rating,omitempty"`
	CreatedAt     Timestamp   `json:"created_at"`
	UpdatedAt     *Timestamp  `json:"updated_at,omitempty"`
}

// PostPage — страница постов из GET /posts/posts.
type PostPage struct {
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Posts []Post `json:"posts"`
}

// PublishFlag нормализует признак публикации на границе десериализации.
//
// Бэкенд исторически отдаёт поле is_published в трёх представлениях:
// true/"true"/1 означают «опубликован», всё прочее (false/"false"/0/null/
// отсутствие поля) — «не опубликован». Ниже по стеку тип ведёт себя как
// строгий bool, нестрогие сравнения запрещены.
type PublishFlag bool

func (f *PublishFlag) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("publish flag: %w", err)
	}

	switch t := v.(type) {
	case bool:
		*f = PublishFlag(t)
	case string:
		*f = t == "true"
	case float64:
		*f = t == 1
	default:
		*f = false
	}

	return nil
}

func (f PublishFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Bool — строгое булево значение флага.
func (f PublishFlag) Bool() bool { return bool(f) }

// Timestamp — время из ответов бэкенда.
//
// Бэкенд сериализует datetime без таймзоны ("2006-01-02T15:04:05.999999"),
// что не проходит строгий RFC3339-парсинг time.Time. Сначала пробуем RFC3339,
// затем «наивный» формат (считаем его UTC).
type Timestamp struct {
	time.Time
}

const naiveLayout = "2006-01-02T15:04:05.999999999"

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}

	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed
		return nil
	}

	parsed, err := time.Parse(naiveLayout, s)
	if err != nil {
		return fmt.Errorf("timestamp %q: %w", s, err)
	}

	t.Time = parsed.UTC()
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
