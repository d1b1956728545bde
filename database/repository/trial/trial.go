package trialRepo

import (
	"context"

	"coursebot/models"
)

// TrialRepository defines methods for trial lesson bookings.
type TrialRepository interface {
	// CreateWithUser atomically persists the user profile and the trial
	// lesson referencing it. Either both rows exist afterwards or neither.
	CreateWithUser(ctx context.Context, user *models.User, trial *models.TrialLesson) error
	// GetByID retrieves a trial lesson by its unique ID.
	GetByID(id string) (*models.TrialLesson, error)
	// GetAll retrieves all trial lessons, optionally only unconfirmed ones.
	GetAll(unconfirmedOnly bool) ([]models.TrialLesson, error)
	// Confirm marks a trial lesson as confirmed.
	Confirm(id string) error
	// Clear removes every trial lesson.
	Clear() (int64, error)
}
