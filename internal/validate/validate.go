// validate — клиентская валидация форм до похода в бэкенд.
//
// Правила повторяют серверные ограничения схем бэкенда: невалидная форма
// блокируется целиком, ошибки показываются построчно у полей и по сети
// не отправляются. Поверх go-playground/validator регистрируются три
// доменных правила:
//   - username_chars: ^[a-zA-Z0-9_]+$;
//   - tag_chars: ^[a-zA-Z0-9_ -]+$;
//   - password_policy: минимум одна заглавная, одна строчная, одна цифра
//     и ни одной пары подряд идущих цифр.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldErrors — ошибки валидации по полям формы: json-имя поля ->
// человекочитаемое сообщение для построчного показа.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator — обёртка над go-playground/validator с доменными правилами.
// Безопасен для конкурентного использования.
type Validator struct {
	v *validator.Validate
}

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	tagRe      = regexp.MustCompile(`^[a-zA-Z0-9_ -]+$`)
)

// New — валидатор с зарегистрированными правилами. Имена полей в ошибках
// берутся из json-тегов, чтобы фронт мог сопоставить их с инпутами.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Ошибки регистрации правил возможны только при некорректном имени тега.
	_ = v.RegisterValidation("username_chars", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("tag_chars", func(fl validator.FieldLevel) bool {
		return tagRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password_policy", func(fl validator.FieldLevel) bool {
		return checkPasswordPolicy(fl.Field().String())
	})

	return &Validator{v: v}
}

// Struct валидирует форму; при нарушениях возвращает FieldErrors.
func (va *Validator) Struct(s any) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, ok := fields[fe.Field()]; !ok {
			fields[fe.Field()] = message(fe)
		}
	}

	return fields
}

// checkPasswordPolicy — заглавная + строчная + цифра, без двух цифр подряд.
func checkPasswordPolicy(pw string) bool {
	var upper, lower, digit bool
	prevDigit := false

	for _, r := range pw {
		isDigit := unicode.IsDigit(r)
		if isDigit && prevDigit {
			return false
		}
		prevDigit = isDigit

		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case isDigit:
			digit = true
		}
	}

	return upper && lower && digit
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "username_chars":
		return "only letters, digits and underscore are allowed"
	case "tag_chars":
		return "only letters, digits, space, underscore and dash are allowed"
	case "password_policy":
		return "must contain an uppercase letter, a lowercase letter and a digit, without consecutive digits"
	default:
		return "invalid value"
	}
}
