package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirisampada/SSCC-BookingService/internal/api/handlers"
)

const (
	msgMissingToken = "authorization token is required"
	msgInvalidToken = "invalid or expired token"
)

// TokenParser проверяет токен доступа и возвращает субъекта
type TokenParser interface {
	Parse(token string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, args ...interface{})
}

type subjectContextKey struct{}

// Auth проверяет Bearer токен в заголовке Authorization.
// Субъект токена кладётся в контекст запроса.
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			subject, err := parser.Parse(token)
			if err != nil {
				logger.Warn("Auth middleware: rejected token: %v", err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), subjectContextKey{}, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromContext возвращает субъекта токена из контекста
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectContextKey{}).(string)
	return subject, ok
}
