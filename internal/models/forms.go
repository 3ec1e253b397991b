// Формы публичной поверхности клиента.
//
// Валидация выполняется на стороне клиента (internal/validate) до похода
// в бэкенд: невалидная форма никогда не отправляется по сети. Правила
// повторяют серверные ограничения схем бэкенда.
package models

// LoginRequest — форма входа.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest — форма регистрации.
//
// password_reminder — секретная фраза для восстановления пароля.
type RegisterRequest struct {
	Username         string `json:"username" validate:"required,min=3,max=50,username_chars"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8,max=100,password_policy"`
	PasswordReminder string `json:"password_reminder" validate:"required,min=5,max=255"`
}

// PostForm — форма создания/редактирования поста.
//
// Content может содержать разметку rich-text редактора; клиент её не
// интерпретирует, отображение — забота фронта.
type PostForm struct {
	Title       string  `json:"title" validate:"required,min=5,max=100"`
	Content     string  `json:"content" validate:"required,min=10,max=5000"`
	IsPublished bool    `json:"is_published"`
	TagIDs      []int64 `json:"tag_ids"`
}

// TagForm — форма создания тега.
type TagForm struct {
	Name string `json:"name" validate:"required,min=2,max=50,tag_chars"`
}

// RatingRequest — выставление оценки посту.
//
// Оценка задаётся либо явным значением rating (кратно 0.5 в [0.5, 5]),
// либо геометрией клика по слоту виджета: номер слота, смещение курсора
// внутри слота и ширина слота. Второй вариант разрешается на сервере
// через internal/rating.
type RatingRequest struct {
	Rating    *float64 `json:"rating,omitempty"`
	Slot      *int     `json:"slot,omitempty"`
	OffsetX   *float64 `json:"offset_x,omitempty"`
	SlotWidth *float64 `json:"slot_width,omitempty"`
}

// PasswordResetRequest — запрос токена восстановления пароля.
type PasswordResetRequest struct {
	Email            string `json:"email" validate:"required,email"`
	PasswordReminder string `json:"password_reminder" validate:"required,min=5,max=255"`
}

// ResetPasswordRequest — смена пароля по токену восстановления.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=100,password_policy"`
}
