package locationRepo

import "coursebot/models"

// LocationRepository defines methods for classroom location access.
type LocationRepository interface {
	// GetByID retrieves a location by its unique ID.
	GetByID(id string) (*models.Location, error)
	// GetAll retrieves all locations grouped-ready (sorted by district).
	GetAll() ([]models.Location, error)
	// Create inserts a new location record.
	Create(location *models.Location) error
	// Delete removes a location record by its ID.
	Delete(id string) error
	// Count returns the number of stored locations.
	Count() (int64, error)
}
