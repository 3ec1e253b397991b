package rating

import "math"

// Breakdown — раскладка среднего рейтинга для read-only отображения:
// full = floor(rating), половина добавляется только при остатке >= 0.5,
// остальное — пустые звёзды. Остаток < 0.5 округляется вниз
// (3.49 -> 3 полных, 0 половин, 2 пустых).
func Breakdown(rating float64, maxStars int) (full, half, empty int) {
	if rating < 0 {
		rating = 0
	}

	full = int(math.Floor(rating))
	if full > maxStars {
		full = maxStars
	}

	if full < maxStars && rating-math.Floor(rating) >= 0.5 {
		half = 1
	}

	empty = maxStars - full - half
	return full, half, empty
}

// Icons — та же раскладка последовательностью слева направо:
// сперва полные, затем 0 или 1 половинная, затем пустые.
func Icons(rating float64, maxStars int) []Kind {
	full, half, _ := Breakdown(rating, maxStars)

	out := make([]Kind, 0, maxStars)
	for i := 0; i < full; i++ {
		out = append(out, KindFull)
	}
	if half == 1 {
		out = append(out, KindHalf)
	}
	for len(out) < maxStars {
		out = append(out, KindEmpty)
	}

	return out
}
