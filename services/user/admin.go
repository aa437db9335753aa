package user

import (
	"fmt"

	"medibook/models"
)

// IsAdmin reports whether the account with the given email holds the admin
// role. An unknown email is simply not an admin.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role to targetEmail. The requester must
// already hold the admin role; otherwise ErrForbidden and the target is left
// untouched.
func (s *DefaultUserService) PromoteToAdmin(requesterEmail, targetEmail string) error {
	requester, err := s.Repo.GetByEmail(requesterEmail)
	if err != nil {
		return fmt.Errorf("failed to load requester account: %w", err)
	}
	if !requester.IsAdmin() {
		return ErrForbidden
	}

	matched, err := s.Repo.SetRole(targetEmail, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to grant admin role to %s: %w", targetEmail, err)
	}
	if !matched {
		return ErrUserNotFound
	}
	return nil
}
