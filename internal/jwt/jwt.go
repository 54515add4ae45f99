package jwt

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bulletin-dev/bulletin/internal/domain"
	internal_errors "github.com/bulletin-dev/bulletin/internal/errors"
	"github.com/bulletin-dev/bulletin/internal/logger"
)

type JwtService interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

// NewToken issues a bearer token carrying only the user id. Role is
// deliberately not embedded: services reload the actor row on every
// request so role changes take effect without reissuing tokens.
func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"uid": user.Id,
		"exp": time.Now().Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", internal_errors.Unauthenticated("Can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, internal_errors.Unauthenticated("Invalid token signature")
	}

	if !token.Valid {
		return nil, internal_errors.Unauthenticated("Invalid access token")
	}

	return token, nil
}
