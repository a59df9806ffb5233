package http

import (
	"context"
	"net/http"

	"github.com/Ranjan7481/Ecommerce/internal/domain"
	"github.com/Ranjan7481/Ecommerce/internal/usecase"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
)

type ctxKey int

const userCtxKey ctxKey = iota

// sessionCookie — имя cookie с токеном сессии.
const sessionCookie = "token"

// Auth проверяет cookie сессии и кладет пользователя в контекст запроса.
func Auth(userUC usecase.UserUC) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookie)
			if err != nil || cookie.Value == "" {
				WriteError(w, e.ErrUnauthorized)
				return
			}

			user, err := userUC.ResolveSession(r.Context(), cookie.Value)
			if err != nil {
				WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает дальше только администраторов. Вешается после Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromCtx(r.Context())
		if !ok || !user.IsAdmin() {
			WriteError(w, e.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserFromCtx возвращает пользователя, положенного в контекст middleware'ом Auth.
func UserFromCtx(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*domain.User)
	return user, ok
}
