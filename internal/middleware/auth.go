package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bulletin-dev/bulletin/internal/domain"
	"github.com/bulletin-dev/bulletin/internal/errors"
	jwt_internal "github.com/bulletin-dev/bulletin/internal/jwt"
	"github.com/bulletin-dev/bulletin/internal/utils"
)

// Key to store the acting user id in the request context
type key int

const userIdKey key = 0

var (
	errNoToken       = errors.Unauthenticated("Missing access token")
	errInvalidClaims = errors.Unauthenticated("Invalid token claims")
)

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth resolves the bearer identity and stores the user id in the
// request context. The token carries only the id; services reload the
// user row, so stale role claims cannot linger.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userId, err := a.extractUserId(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserId(r.Context(), userId)))
		})
	}
}

func (a *Auth) extractUserId(r *http.Request) (domain.UserId, error) {
	// Cookie first (browser clients), Authorization header second
	var tokenString string
	accessCookie, err := r.Cookie("accessToken")
	if err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return 0, errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errInvalidClaims
	}

	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return 0, errInvalidClaims
	}

	return domain.UserId(uidFloat), nil
}

// WithUserId stores the authenticated user id in the context.
func WithUserId(ctx context.Context, userId domain.UserId) context.Context {
	return context.WithValue(ctx, userIdKey, userId)
}

// GetUserIdFromContext returns the authenticated user id, or false when
// the request passed through no auth middleware.
func GetUserIdFromContext(r *http.Request) (domain.UserId, bool) {
	userId, ok := r.Context().Value(userIdKey).(domain.UserId)
	return userId, ok
}
