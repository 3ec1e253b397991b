// postlist — клиентская логика списков постов: разбиение на «опубликованные»
// и «мои черновики», фильтр по тегу и детерминированная пагинация поверх
// коллекции, полученной от бэкенда.
//
// Разбиение тотально и непересекаемо для конкретного зрителя: опубликованный
// пост виден всем, черновик — только автору; один пост не попадает в оба
// представления. Все решения принимаются по уже нормализованному флагу
// публикации (models.PublishFlag), нестрогих сравнений здесь нет.
package postlist

import "github.com/pribylovaa/go-blog-client/internal/models"

// DefaultPageSize — размер страницы клиентской пагинации.
const DefaultPageSize = 10

// Partition разбивает коллекцию на два представления:
//   - published: все опубликованные посты, без ограничения по владельцу;
//   - drafts: неопубликованные посты текущего зрителя.
//
// Чужие черновики не попадают ни в одно из представлений.
func Partition(posts []models.Post, viewerID int64) (published, drafts []models.Post) {
	published = make([]models.Post, 0, len(posts))
	drafts = make([]models.Post, 0)

	for _, p := range posts {
		if p.IsPublished.Bool() {
			published = append(published, p)
			continue
		}

		if p.Author.ID == viewerID {
			drafts = append(drafts, p)
		}
	}

	return published, drafts
}

// FilterByTag оставляет посты, имеющие хотя бы один тег с именем name.
// Пустое имя означает отсутствие фильтра.
func FilterByTag(posts []models.Post, name string) []models.Post {
	if name == "" {
		return posts
	}

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if models.HasTag(p.Tags, name) {
			out = append(out, p)
		}
	}

	return out
}

// TotalPages — ceil(n/size); для пустой коллекции 0.
func TotalPages(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}

	return (n + size - 1) / size
}

// ClampPage зажимает номер страницы в [1, max(total, 1)].
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}

	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}

	return page
}
