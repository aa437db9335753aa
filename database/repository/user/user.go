package userRepo

import "medibook/models"

// UserRepository persists accounts keyed by email.
type UserRepository interface {
	Upsert(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	SetRole(email, role string) (bool, error)
}
