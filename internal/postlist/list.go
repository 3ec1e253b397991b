package postlist

import "github.com/pribylovaa/go-blog-client/internal/models"

// List — состояние одного представления списка: исходная коллекция,
// отфильтрованная проекция, выбранный тег и текущая страница.
//
// Состояние живёт в рамках одного рендера и изменяется только именованными
// событиями: смена тега, смена страницы, удаление поста, слияние оценки.
// List не потокобезопасен — экземпляр принадлежит одному запросу.
type List struct {
	all      []models.Post
	filtered []models.Post
	tag      string
	page     int
	pageSize int
}

// NewList — список поверх коллекции posts (возможно пустой, в т.ч. nil —
// так представляется неудавшаяся загрузка).
func NewList(posts []models.Post) *List {
	l := &List{
		all:      posts,
		pageSize: DefaultPageSize,
		page:     1,
	}
	l.filtered = FilterByTag(l.all, l.tag)

	return l
}

// SetTag выбирает фильтр по тегу (пустая строка — без фильтра) и
// перефильтровывает коллекцию. Если текущая страница вышла за пределы
// нового результата, она сбрасывается на первую.
func (l *List) SetTag(name string) {
	l.tag = name
	l.filtered = FilterByTag(l.all, l.tag)

	if l.page > l.TotalPages() {
		l.page = 1
	}
}

// SetPage переходит на страницу page с зажимом в [1, max(TotalPages, 1)].
func (l *List) SetPage(page int) {
	l.page = ClampPage(page, l.TotalPages())
}

// Page — срез текущей страницы отфильтрованной коллекции.
func (l *List) Page() []models.Post {
	start := (l.page - 1) * l.pageSize
	if start >= len(l.filtered) {
		return []models.Post{}
	}

	end := start + l.pageSize
	if end > len(l.filtered) {
		end = len(l.filtered)
	}

	return l.filtered[start:end]
}

// PageNum — номер текущей страницы.
func (l *List) PageNum() int { return l.page }

// TotalPages — число страниц отфильтрованной коллекции.
func (l *List) TotalPages() int { return TotalPages(len(l.filtered), l.pageSize) }

// Len — размер отфильтрованной коллекции.
func (l *List) Len() int { return len(l.filtered) }

// Tag — текущий фильтр.
func (l *List) Tag() string { return l.tag }

// Remove удаляет пост из обеих коллекций (исходной и отфильтрованной),
// чтобы счётчики пагинации оставались согласованными без повторной загрузки.
// Повторное удаление отсутствующего id — no-op.
func (l *List) Remove(id int64) {
	l.all = removeByID(l.all, id)
	l.filtered = removeByID(l.filtered, id)

	if l.page > l.TotalPages() && l.TotalPages() > 0 {
		l.page = l.TotalPages()
	}
}

// ApplyRating сливает результат успешной отправки оценки: average_rating
// заменяется на свежее среднее от бэкенда, user_rating — на только что
// отправленное значение. Остальные посты и поля не затрагиваются.
// Возвращает false, если пост не найден.
func (l *List) ApplyRating(id int64, submitted, newAverage float64) bool {
	found := applyRating(l.all, id, submitted, newAverage)
	applyRating(l.filtered, id, submitted, newAverage)

	return found
}

func removeByID(posts []models.Post, id int64) []models.Post {
	for i := range posts {
		if posts[i].ID == id {
			return append(posts[:i:i], posts[i+1:]...)
		}
	}

	return posts
}

func applyRating(posts []models.Post, id int64, submitted, newAverage float64) bool {
	for i := range posts {
		if posts[i].ID == id {
			avg, user := newAverage, submitted
			posts[i].AverageRating = &avg
			posts[i].UserRating = &user
			return true
		}
	}

	return false
}
