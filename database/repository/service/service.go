package serviceRepo

import "medibook/models"

// ServiceRepository provides read access to the treatment catalogue.
type ServiceRepository interface {
	GetAll() ([]models.Service, error)
	GetByName(name string) (*models.Service, error)
}
