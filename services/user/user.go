package user

import (
	"fmt"
	"time"

	"medibook/models"
	"medibook/utils"
)

// tokenTTL matches the lifetime the portal has always issued.
const tokenTTL = time.Hour

// UpsertUser stores the identity claims for u.Email and issues a fresh
// bearer token for that identity. This is the sign-in path: accounts are
// created on first contact and updated on every later one.
func (s *DefaultUserService) UpsertUser(u models.User) (*models.User, string, error) {
	if u.Email == "" {
		return nil, "", fmt.Errorf("user email is required")
	}

	if err := s.Repo.Upsert(&u); err != nil {
		return nil, "", fmt.Errorf("failed to upsert user: %w", err)
	}

	stored, err := s.Repo.GetByEmail(u.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to reload user %s: %w", u.Email, err)
	}

	token, err := utils.GenerateToken(u.Email, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token for %s: %w", u.Email, err)
	}
	return stored, token, nil
}

// GetUserByEmail fetches one account. Missing accounts surface as
// ErrUserNotFound.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// GetAllUsers lists every account.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
