package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-blog-client/internal/models"
	"github.com/pribylovaa/go-blog-client/internal/rating"
	"github.com/pribylovaa/go-blog-client/internal/validate"
)

// ratingResponse — результат выставления оценки: свежее среднее от
// бэкенда, только что отправленная оценка зрителя и готовая раскладка
// звёзд для перерисовки карточки.
type ratingResponse struct {
	PostID        int64    `json:"post_id"`
	AverageRating float64  `json:"average_rating"`
	UserRating    float64  `json:"user_rating"`
	AverageStars  []string `json:"average_stars"`
}

// SubmitRating — POST /posts/{id}/rating. Требует сессии.
//
// Оценка приходит либо явным значением rating, либо геометрией клика по
// слоту виджета (slot, offset_x, slot_width) — тогда значение разрешается
// той же логикой, что и подсветка при наведении: левая половина слота —
// половина звезды, правая — целая.
func (h *Handlers) SubmitRating(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var in models.RatingRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, errInvalidBody)
		return
	}

	value, verr := resolveRating(in)
	if verr != nil {
		h.fail(w, r, verr)
		return
	}

	resp, err := h.Backend.SubmitRating(r.Context(), id, sess.UserID, value)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	icons := rating.Icons(resp.NewAverage, rating.DefaultStars)
	stars := make([]string, len(icons))
	for i, k := range icons {
		stars[i] = k.String()
	}

	writeJSON(w, http.StatusOK, ratingResponse{
		PostID:        id,
		AverageRating: resp.NewAverage,
		UserRating:    value,
		AverageStars:  stars,
	})
}

// resolveRating переводит запрос в численную оценку.
func resolveRating(in models.RatingRequest) (float64, error) {
	if in.Rating != nil {
		if !rating.Valid(*in.Rating) {
			return 0, validate.FieldErrors{"rating": "must be a multiple of 0.5 between 0.5 and 5"}
		}

		return *in.Rating, nil
	}

	if in.Slot == nil || in.OffsetX == nil || in.SlotWidth == nil {
		return 0, validate.FieldErrors{"rating": "either rating or slot geometry is required"}
	}

	wdg := rating.NewWidget(0, false)
	wdg.PointerMove(*in.Slot, *in.OffsetX, *in.SlotWidth)

	value, ok := wdg.Click()
	if !ok || !rating.Valid(value) {
		return 0, validate.FieldErrors{"slot": "slot geometry does not resolve to a valid rating"}
	}

	return value, nil
}
