package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/autovalley/AV-RentalService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// HeaderUserID заголовок с уже разрешённой идентичностью пользователя.
// Аутентификация — забота внешнего слоя, ядро получает готовый ID.
const HeaderUserID = "X-User-ID"

// Auth извлекает ID пользователя из заголовка и кладёт его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderUserID+" header")
			return
		}
		if _, err := uuid.Parse(userID); err != nil {
			handlers.RespondUnauthorized(w, "invalid "+HeaderUserID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID достаёт ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
