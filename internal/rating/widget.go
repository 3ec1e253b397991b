package rating

// Widget — интерактивный звёздный виджет.
//
// Состояние между перерисовками сводится к паре (current, hover):
// отображаемое значение всегда hover ?? current, других источников нет.
// Disabled-виджет продолжает отображать current, но игнорирует ввод.
type Widget struct {
	current  float64
	hover    float64
	hovering bool
	disabled bool
	stars    int
}

// NewWidget — виджет на DefaultStars слотов.
// current — последняя зафиксированная оценка зрителя (0, если её нет).
func NewWidget(current float64, disabled bool) *Widget {
	return &Widget{current: current, disabled: disabled, stars: DefaultStars}
}

// PointerMove — движение курсора внутри слота slot со смещением offsetX
// при ширине слота width. Пересчитывается на каждое событие, без
// сглаживания.
func (w *Widget) PointerMove(slot int, offsetX, width float64) {
	if w.disabled {
		return
	}

	if slot < 0 || slot >= w.stars {
		return
	}

	w.hover = HoverValue(slot, offsetX, width)
	w.hovering = true
}

// PointerLeave — курсор покинул виджет: hover сбрасывается, отображение
// возвращается к current.
func (w *Widget) PointerLeave() {
	if w.disabled {
		return
	}

	w.hovering = false
	w.hover = 0
}

// Click фиксирует оценку: hover, если он есть, иначе current.
// Сам клик hover не сбрасывает — им управляет следующее событие курсора.
// Для disabled-виджета возвращает ok=false.
func (w *Widget) Click() (float64, bool) {
	if w.disabled {
		return 0, false
	}

	if w.hovering {
		w.current = w.hover
		return w.hover, true
	}

	return w.current, true
}

// Display — отображаемое значение: hover ?? current.
func (w *Widget) Display() float64 {
	if w.hovering {
		return w.hover
	}

	return w.current
}

// Slots — визуальные состояния слотов для текущего Display().
func (w *Widget) Slots() []Kind {
	return Slots(w.Display(), w.stars)
}
