package models

import "github.com/pribylovaa/go-blog-client/internal/rating"

// PostCard — карточка поста для списков публичной поверхности.
//
// average_stars — готовая read-only раскладка среднего рейтинга
// (full/half/empty слева направо); отсутствие average_rating означает
// «оценок ещё нет» и отображается отдельно от нуля. editable выставляется
// для постов текущего зрителя.
type PostCard struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Author        Author    `json:"author"`
	Tags          []Tag     `json:"tags"`
	IsPublished   bool      `json:"is_published"`
	AverageRating *float64  `json:"average_rating,omitempty"`
	AverageStars  []string  `json:"average_stars,omitempty"`
	UserRating    *float64  `json:"user_rating,omitempty"`
	Editable      bool      `json:"editable"`
	CreatedAt     Timestamp `json:"created_at"`
}

// CardFromPost собирает карточку для зрителя viewerID.
func CardFromPost(p Post, viewerID int64) PostCard {
	card := PostCard{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		Author:        p.Author,
		Tags:          VisibleTags(p.Tags),
		IsPublished:   p.IsPublished.Bool(),
		AverageRating: p.AverageRating,
		UserRating:    p.UserRating,
		Editable:      viewerID != 0 && p.Author.ID == viewerID,
		CreatedAt:     p.CreatedAt,
	}

	if p.AverageRating != nil {
		icons := rating.Icons(*p.AverageRating, rating.DefaultStars)
		card.AverageStars = make([]string, len(icons))
		for i, k := range icons {
			card.AverageStars[i] = k.String()
		}
	}

	return card
}

// CardsFromPosts — карточки для всей страницы списка.
func CardsFromPosts(posts []Post, viewerID int64) []PostCard {
	out := make([]PostCard, 0, len(posts))
	for _, p := range posts {
		out = append(out, CardFromPost(p, viewerID))
	}

	return out
}
