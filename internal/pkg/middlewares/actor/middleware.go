package actor

import (
	"context"
	"net/http"
	"strconv"

	"dispatch/internal/entities"
)

// Заголовки проставляет доверенный шлюз после аутентификации,
// сам сервис токены не проверяет.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type contextKey struct{}

var actorKey contextKey

func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
			if err != nil || id <= 0 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			role := entities.RoleType(r.Header.Get(HeaderUserRole))
			switch role {
			case entities.RoleUser, entities.RoleCourier, entities.RoleAdmin:
			default:
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, entities.Actor{ID: id, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func FromContext(ctx context.Context) (entities.Actor, bool) {
	actorEntity, ok := ctx.Value(actorKey).(entities.Actor)
	return actorEntity, ok
}

// WithActor для тестов хендлеров.
func WithActor(ctx context.Context, actorEntity entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actorEntity)
}
