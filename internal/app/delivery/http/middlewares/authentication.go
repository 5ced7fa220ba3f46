package middlewares

import (
	"context"
	"net/http"
	"strings"

	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/exceptions"
	"citaplan-service/internal/pkg/utils"
)

func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseActorToken(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACTOR_ID_KEY, claims.Subject)
		ctx = context.WithValue(ctx, constvars.CONTEXT_ACTOR_ROLES_KEY, claims.Roles)
		ctx = context.WithValue(ctx, constvars.CONTEXT_ACTOR_CENTER_KEY, claims.CenterID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
