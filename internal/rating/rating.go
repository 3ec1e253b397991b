// rating — логика звёздного виджета оценок с шагом в ползвезды.
//
// Пакет содержит две независимые части:
//   - интерактивный виджет (Widget): конечный автомат hover/click поверх
//     пяти слотов фиксированной ширины, отображающий значение в {0.5, 1.0,
//     ..., 5.0} из позиции курсора;
//   - read-only раскладка среднего рейтинга (Breakdown/Icons) для карточек.
//
// Пороговые правила двух частей намеренно различаются и не унифицируются:
// интерактивный виджет оперирует только значениями, кратными 0.5, а
// read-only вариант округляет остаток < 0.5 вниз до пустой звезды
// (3.3 -> 3 полных без половины). Унификация изменила бы отображение
// таких средних.
package rating

import "math"

// DefaultStars — количество слотов виджета.
const DefaultStars = 5

// Kind — визуальное состояние одного слота.
type Kind int

const (
	KindEmpty Kind = iota
	KindHalf
	KindFull
)

func (k Kind) String() string {
	switch k {
	case KindFull:
		return "full"
	case KindHalf:
		return "half"
	default:
		return "empty"
	}
}

// Valid — является ли значение корректной оценкой: кратно 0.5 в [0.5, 5].
func Valid(v float64) bool {
	if v < 0.5 || v > float64(DefaultStars) {
		return false
	}

	return math.Mod(v*2, 1) == 0
}

// HoverValue — гипотетическая оценка для курсора внутри слота slot
// (нумерация с нуля): левая половина слота даёт slot+0.5, правая — slot+1.
// Граница ровно на половине ширины относится к правой половине.
func HoverValue(slot int, offsetX, width float64) float64 {
	if width > 0 && offsetX < width/2 {
		return float64(slot) + 0.5
	}

	return float64(slot) + 1.0
}

// Slots — состояния слотов интерактивного виджета для отображаемого
// значения display: слот i полный при display >= i+1, половинный при
// display >= i+0.5, иначе пустой.
func Slots(display float64, n int) []Kind {
	out := make([]Kind, n)
	for i := range out {
		switch {
		case display >= float64(i)+1:
			out[i] = KindFull
		case display >= float64(i)+0.5:
			out[i] = KindHalf
		}
	}

	return out
}
