package service

import (
	"github.com/bulletin-dev/bulletin/internal/authz"
	"github.com/bulletin-dev/bulletin/internal/domain"
	"github.com/bulletin-dev/bulletin/internal/errors"
	"github.com/bulletin-dev/bulletin/internal/utils"
)

type UserService interface {
	SetRole(actorId domain.UserId, targetId domain.UserId, role domain.Role) (domain.User, error)
	AvatarURL(userId domain.UserId, size int) (string, error)
}

type User struct {
	storage UserStorage
}

type UserStorage interface {
	User(id domain.UserId) (domain.User, error)
	UpdateUserRole(id domain.UserId, role domain.Role) error
}

func NewUser(storage UserStorage) *User {
	return &User{storage}
}

// SetRole applies the role-change rule: staff-tier actors only, never
// on themselves, and STAFF may not touch a SUPERADMIN target.
func (u *User) SetRole(actorId domain.UserId, targetId domain.UserId, role domain.Role) (domain.User, error) {
	if !role.Valid() {
		return domain.User{}, errors.InvalidInput("Unrecognised user role")
	}

	actor, err := u.storage.User(actorId)
	if err != nil {
		return domain.User{}, err
	}
	target, err := u.storage.User(targetId)
	if err != nil {
		return domain.User{}, err
	}

	if !authz.CanChangeRole(&actor, &target) {
		return domain.User{}, errors.Forbidden("Not allowed to change that user's role")
	}

	if err := u.storage.UpdateUserRole(targetId, role); err != nil {
		return domain.User{}, err
	}

	target.Role = role
	return target, nil
}

func (u *User) AvatarURL(userId domain.UserId, size int) (string, error) {
	user, err := u.storage.User(userId)
	if err != nil {
		return "", err
	}
	return utils.AvatarURL(user.Email, size), nil
}
