package backend

import (
	"context"
	"net/http"
)

type ratingRequest struct {
	Rating float64 `json:"rating"`
	PostID int64   `json:"post_id"`
	UserID int64   `json:"user_id"`
}

// RatingResponse — ответ POST /ratings/ratings: свежее агрегированное
// среднее по посту после учёта оценки.
type RatingResponse struct {
	NewAverage float64 `json:"new_average"`
}

// SubmitRating — выставление (или замена) оценки зрителя userID посту
// postID. Бэкенд пересчитывает среднее и возвращает его в ответе.
func (c *Client) SubmitRating(ctx context.Context, postID, userID int64, value float64) (*RatingResponse, error) {
	const op = "backend.SubmitRating"

	body := ratingRequest{Rating: value, PostID: postID, UserID: userID}

	var out RatingResponse
	if err := c.do(ctx, op, http.MethodPost, "/ratings/ratings", nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
