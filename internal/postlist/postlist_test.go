package postlist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-blog-client/internal/models"
)

// Тесты разбиения и пагинации.
//
// Покрытие:
//  - Partition: тотальное непересекающееся разбиение с учётом владельца,
//    включая «грязные» значения флага публикации из сети;
//  - фильтр по тегу и сброс страницы при смене фильтра;
//  - пагинация: ceil-подсчёт страниц, зажим номера страницы;
//  - Remove: согласованное удаление из обеих коллекций, идемпотентность;
//  - ApplyRating: точечное слияние новой оценки без влияния на соседей.

func post(id, authorID int64, published models.PublishFlag, tags ...string) models.Post {
	p := models.Post{
		ID:          id,
		Author:      models.Author{ID: authorID},
		IsPublished: published,
	}
	for i, name := range tags {
		p.Tags = append(p.Tags, models.Tag{ID: int64(i + 1), Name: name})
	}

	return p
}

func posts(n int) []models.Post {
	out := make([]models.Post, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, post(int64(i), 7, true))
	}

	return out
}

func ids(posts []models.Post) []int64 {
	out := make([]int64, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}

	return out
}

func TestPartition_SplitByOwnerAndFlag(t *testing.T) {
	t.Parallel()

	// Пост 2 приходит с is_published == "false" (строка): после нормализации
	// это черновик. Пост 3 — чужой черновик, не виден зрителю 7 нигде.
	raw := `{"posts":[
		{"id":1,"author":{"id":7},"is_published":true},
		{"id":2,"author":{"id":7},"is_published":"false"},
		{"id":3,"author":{"id":9},"is_published":false}
	]}`

	var page models.PostPage
	require.NoError(t, json.Unmarshal([]byte(raw), &page))

	published, drafts := Partition(page.Posts, 7)
	require.Equal(t, []int64{1}, ids(published))
	require.Equal(t, []int64{2}, ids(drafts))
}

func TestPartition_PublishedVisibleToAnyViewer(t *testing.T) {
	t.Parallel()

	collection := []models.Post{
		post(1, 7, true),
		post(2, 9, true),
		post(3, 9, false),
	}

	published, drafts := Partition(collection, 7)
	require.Equal(t, []int64{1, 2}, ids(published), "опубликованные видны всем")
	require.Empty(t, drafts, "чужие черновики не видны")
}

func TestFilterByTag(t *testing.T) {
	t.Parallel()

	collection := []models.Post{
		post(1, 7, true, "go"),
		post(2, 7, true, "go", "web"),
		post(3, 7, true, "db"),
	}

	require.Equal(t, []int64{1, 2}, ids(FilterByTag(collection, "go")))
	require.Equal(t, []int64{3}, ids(FilterByTag(collection, "db")))
	require.Equal(t, []int64{1, 2, 3}, ids(FilterByTag(collection, "")), "пустой фильтр — вся коллекция")
	require.Empty(t, FilterByTag(collection, "missing"))
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, TotalPages(25, 10))
	require.Equal(t, 1, TotalPages(10, 10))
	require.Equal(t, 2, TotalPages(11, 10))
	require.Equal(t, 0, TotalPages(0, 10))
}

func TestClampPage(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, ClampPage(0, 3))
	require.Equal(t, 1, ClampPage(-5, 3))
	require.Equal(t, 2, ClampPage(2, 3))
	require.Equal(t, 3, ClampPage(9, 3))
	require.Equal(t, 1, ClampPage(4, 0), "пустая коллекция — всегда первая страница")
}

func TestList_Pagination(t *testing.T) {
	t.Parallel()

	l := NewList(posts(25))
	require.Equal(t, 3, l.TotalPages())

	l.SetPage(3)
	require.Equal(t, 3, l.PageNum())
	require.Len(t, l.Page(), 5, "последняя страница содержит остаток")

	// Запрошенная страница за пределами — зажимается.
	l.SetPage(7)
	require.Equal(t, 3, l.PageNum())

	l.SetPage(1)
	require.Len(t, l.Page(), 10)
	require.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(l.Page()))
}

func TestList_SetTag_ResetsPageWhenOutOfRange(t *testing.T) {
	t.Parallel()

	collection := posts(25)
	// Тег только у первых трёх постов.
	for i := 0; i < 3; i++ {
		collection[i].Tags = []models.Tag{{ID: 1, Name: "go"}}
	}

	l := NewList(collection)
	l.SetPage(3)

	l.SetTag("go")
	require.Equal(t, 1, l.PageNum(), "страница за пределами нового результата сбрасывается")
	require.Equal(t, []int64{1, 2, 3}, ids(l.Page()))

	l.SetTag("")
	require.Equal(t, 25, l.Len())
}

func TestList_EmptyCollection(t *testing.T) {
	t.Parallel()

	// nil-коллекция — так представляется неудавшаяся загрузка: операции
	// работают на пустом состоянии и не паникуют.
	l := NewList(nil)
	require.Equal(t, 0, l.TotalPages())
	require.Empty(t, l.Page())

	l.SetTag("go")
	l.SetPage(5)
	require.Equal(t, 1, l.PageNum())

	l.Remove(1)
	require.False(t, l.ApplyRating(1, 4.5, 4.2))
}

func TestList_Remove_BothCollectionsAndIdempotent(t *testing.T) {
	t.Parallel()

	collection := []models.Post{
		post(1, 7, true, "go"),
		post(2, 7, true, "go"),
		post(3, 7, true, "db"),
	}

	l := NewList(collection)
	l.SetTag("go")
	require.Equal(t, 2, l.Len())

	l.Remove(2)
	require.Equal(t, 1, l.Len())
	require.Equal(t, []int64{1}, ids(l.Page()))

	l.SetTag("")
	require.Equal(t, []int64{1, 3}, ids(l.Page()), "удаление затронуло и исходную коллекцию")

	// Повторное удаление отсутствующего id — no-op.
	l.Remove(2)
	require.Equal(t, 2, l.Len())
}

func TestList_ApplyRating_MergesSinglePost(t *testing.T) {
	t.Parallel()

	collection := []models.Post{
		post(1, 7, true),
		post(2, 9, true),
	}
	prior := 3.0
	collection[1].AverageRating = &prior

	l := NewList(collection)
	require.True(t, l.ApplyRating(1, 4.5, 4.2))

	page := l.Page()
	require.NotNil(t, page[0].AverageRating)
	require.Equal(t, 4.2, *page[0].AverageRating)
	require.NotNil(t, page[0].UserRating)
	require.Equal(t, 4.5, *page[0].UserRating)

	// Соседний пост не затронут.
	require.Equal(t, 3.0, *page[1].AverageRating)
	require.Nil(t, page[1].UserRating)
}
