package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

type Role string

const (
	RoleAttendant Role = "attendant"
	RoleAdmin     Role = "admin"
)

// Allows is the single capability check per request: admins hold every
// capability, everyone else only their own role.
func (r Role) Allows(required Role) bool {
	return r == required || r == RoleAdmin
}

type Claims struct {
	ActorID int64
	Role    Role
}

type claimsKey struct{}

func ClaimsFrom(ctx context.Context) Claims {
	claims, _ := ctx.Value(claimsKey{}).(Claims)
	return claims
}

type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// RequireRole verifies the bearer token and evaluates the role capability
// once, before the handler runs.
func (m *AuthMiddleware) RequireRole(required Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return m.secret, nil
			})
			if err != nil || !token.Valid {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			mapClaims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeError(w, http.StatusUnauthorized, "invalid token claims")
				return
			}

			sub, _ := mapClaims["sub"].(string)
			actorID, err := strconv.ParseInt(sub, 10, 64)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token subject")
				return
			}

			roleName, _ := mapClaims["role"].(string)
			role := Role(roleName)
			if !role.Allows(required) {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, Claims{ActorID: actorID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
