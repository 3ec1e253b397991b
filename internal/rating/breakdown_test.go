package rating

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты read-only раскладки среднего рейтинга.
//
// Ключевые случаи: остаток < 0.5 округляется вниз (3.49 -> без половины),
// остаток >= 0.5 даёт ровно одну половинную звезду, крайние значения 0 и 5.

func TestBreakdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rating float64
		full   int
		half   int
		empty  int
	}{
		{"ноль — все пустые", 0, 0, 0, 5},
		{"пять — все полные", 5, 5, 0, 0},
		{"3.49 — остаток вниз", 3.49, 3, 0, 2},
		{"3.5 — ровно половина", 3.5, 3, 1, 1},
		{"3.3 — остаток вниз", 3.3, 3, 0, 2},
		{"4.9 — половина", 4.9, 4, 1, 0},
		{"0.5 — одна половина", 0.5, 0, 1, 4},
		{"отрицательное — как ноль", -1, 0, 0, 5},
		{"больше максимума — все полные", 6, 5, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			full, half, empty := Breakdown(tc.rating, DefaultStars)
			require.Equal(t, tc.full, full, "full")
			require.Equal(t, tc.half, half, "half")
			require.Equal(t, tc.empty, empty, "empty")
			require.Equal(t, DefaultStars, full+half+empty)
		})
	}
}

func TestIcons_Order(t *testing.T) {
	t.Parallel()

	// Сначала полные, затем 0/1 половинная, затем пустые — слева направо.
	require.Equal(t,
		[]Kind{KindFull, KindFull, KindFull, KindHalf, KindEmpty},
		Icons(3.7, DefaultStars))

	require.Equal(t,
		[]Kind{KindEmpty, KindEmpty, KindEmpty, KindEmpty, KindEmpty},
		Icons(0, DefaultStars))

	require.Equal(t,
		[]Kind{KindFull, KindFull, KindFull, KindFull, KindFull},
		Icons(5, DefaultStars))
}
