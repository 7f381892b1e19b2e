package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/avelinemakeup/AM-BookingService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

type adminKey struct{}

// Auth проверяет админский токен из заголовка запроса.
// Внешняя аутентификация (логин, сессии) вне зоны ответственности
// сервиса, токен выдается доверенным окружением.
type Auth struct {
	adminToken string
}

func NewAuth(adminToken string) *Auth {
	return &Auth{adminToken: adminToken}
}

func (a *Auth) isAdmin(r *http.Request) bool {
	token := r.Header.Get(adminTokenHeader)
	if token == "" || a.adminToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(a.adminToken)) == 1
}

// RequireAdmin пропускает запрос только с валидным админским токеном
func (a *Auth) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !a.isAdmin(r) {
			handlers.RespondForbidden(w, "требуются права администратора")
			return
		}
		next(w, r.WithContext(withAdmin(r.Context())))
	}
}

// Annotate помечает контекст админским флагом, не ограничивая доступ.
// Публичные эндпоинты используют флаг для расширенного поведения.
func (a *Auth) Annotate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.isAdmin(r) {
			r = r.WithContext(withAdmin(r.Context()))
		}
		next(w, r)
	}
}

func withAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey{}, true)
}

// IsAdmin сообщает, помечен ли контекст админским флагом
func IsAdmin(ctx context.Context) bool {
	v, ok := ctx.Value(adminKey{}).(bool)
	return ok && v
}
