package session

import "context"

// Session явный контекст сессии пользователя UI. Заполняется один раз
// middleware-ом из заголовков запроса и передается в каждый вызов бэкенда,
// вместо чтения токена из глобального состояния по всему коду.
type Session struct {
	Token     string // Opaque bearer token issued by the backend
	Role      string // Display role, informational only
	RequestID string // Correlation ID propagated to the backend
}

type ctxKey struct{}

// WithSession кладет сессию в контекст запроса
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext достает сессию из контекста запроса
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok
}
