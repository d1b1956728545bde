package courseRepo

import "coursebot/models"

// CourseRepository defines methods for course reference data access.
type CourseRepository interface {
	// GetByID retrieves a course by its unique ID.
	GetByID(id string) (*models.Course, error)
	// GetAll retrieves all courses.
	GetAll() ([]models.Course, error)
	// FindByAge retrieves all courses whose age range covers the given age,
	// ordered by ascending course id.
	FindByAge(age int) ([]models.Course, error)
	// Create inserts a new course record.
	Create(course *models.Course) error
	// Update modifies an existing course record.
	Update(course *models.Course) error
	// SetTags replaces the tag set of a course.
	SetTags(id string, tags []string) error
	// Delete removes a course record by its ID.
	Delete(id string) error
	// Count returns the number of stored courses.
	Count() (int64, error)
}
