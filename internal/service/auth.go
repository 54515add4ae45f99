package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bulletin-dev/bulletin/internal/domain"
	"github.com/bulletin-dev/bulletin/internal/errors"
	"github.com/bulletin-dev/bulletin/internal/logger"
)

// to mock service in tests
type AuthService interface {
	Signup(email domain.Email, username domain.Username, password domain.Password) (domain.User, error)
	Login(creds domain.Credentials) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.User, error)
	UserByUsername(username domain.Username) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage, jwt}
}

// Signup creates a new GUEST user. Email and username uniqueness is
// arbitrated by the store and surfaces as Conflict.
func (a *Auth) Signup(email domain.Email, username domain.Username, password domain.Password) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if email == "" || username == "" || password == "" {
		return domain.User{}, errors.InvalidInput("Email, username and password are required")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	user, err := a.storage.SaveUser(domain.User{
		Email:    email,
		Username: username,
		PassHash: string(passHash),
		Role:     domain.RoleGuest,
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login verifies credentials and issues an access token. Unknown user
// and wrong password are indistinguishable to the caller.
func (a *Auth) Login(creds domain.Credentials) (string, error) {
	user, err := a.storage.UserByUsername(creds.Username)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.Unauthenticated("Wrong username or password")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return "", errors.Unauthenticated("Wrong username or password")
	}

	return a.jwt.NewToken(user)
}
