package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/PM-AvailabilityService/internal/api/handlers"
)

// UserIDHeader заголовок с ID аутентифицированного пользователя
// Аутентификацию выполняет API gateway, сюда приходит уже проверенный ID
const UserIDHeader = "X-User-ID"

type userIDContextKey struct{}

// Auth middleware проверяет наличие и формат заголовка X-User-ID
// и кладет ID пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
