package user

import (
	"errors"

	userRepo "medibook/database/repository/user"
	"medibook/models"
)

var (
	// ErrForbidden reports a privileged operation attempted by a non-admin.
	ErrForbidden = errors.New("requester does not hold the admin role")

	// ErrUserNotFound reports an email that matches no account.
	ErrUserNotFound = errors.New("user not found")
)

// UserService manages accounts and their roles.
type UserService interface {
	UpsertUser(u models.User) (*models.User, string, error)
	GetUserByEmail(email string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	IsAdmin(email string) (bool, error)
	PromoteToAdmin(requesterEmail, targetEmail string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
