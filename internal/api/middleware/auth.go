package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/HMS-PlanningService/internal/api/handlers"
	"github.com/m04kA/HMS-PlanningService/internal/session"
)

// Auth извлекает bearer-токен сессии из Authorization и кладет явный
// объект сессии в контекст запроса. Токен непрозрачный: его выпускает и
// проверяет бэкенд, фасад только передает его дальше. Запросы без токена
// отклоняются сразу, не доходя до бэкенда.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			handlers.RespondUnauthorized(w, "missing bearer token")
			return
		}

		sess := &session.Session{
			Token:     token,
			Role:      r.Header.Get("X-User-Role"),
			RequestID: RequestIDFromContext(r.Context()),
		}

		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
	})
}
