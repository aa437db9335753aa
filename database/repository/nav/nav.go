package navRepo

import "medibook/models"

// NavRepository provides read access to the navigation menu.
type NavRepository interface {
	GetAll() ([]models.NavItem, error)
}
