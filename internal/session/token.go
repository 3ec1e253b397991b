package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry — срок жизни сессии по exp-клейму access-токена.
//
// Токен парсится без проверки подписи: криптография токена — забота
// бэкенда, клиенту достаточно не держать сессию дольше, чем живёт сам
// токен. Если клейм отсутствует или токен не разбирается, используется
// fallback от текущего момента; exp дальше fallback также усечётся.
func TokenExpiry(token string, fallback time.Duration, now time.Time) time.Time {
	limit := now.Add(fallback)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return limit
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return limit
	}

	if exp.Time.Before(limit) {
		return exp.Time
	}

	return limit
}
