package booking

import (
	"context"
	"fmt"
	"time"

	courseRepo "coursebot/database/repository/course"
	locationRepo "coursebot/database/repository/location"
	trialRepo "coursebot/database/repository/trial"
	"coursebot/models"
	"coursebot/services/notifier"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService commits a completed registration dialog into persistent
// storage and triggers the staff notification.
type BookingService interface {
	Commit(ctx context.Context, session models.DialogSession) (*models.TrialLesson, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Trials    trialRepo.TrialRepository
	Courses   courseRepo.CourseRepository
	Locations locationRepo.LocationRepository
	Notifier  notifier.Notifier
	Logger    *zap.Logger
}

// Commit persists the user profile and the trial lesson atomically, then
// enqueues the admin broadcast. The broadcast is best-effort: its failure is
// logged but never surfaces to the caller once the booking is stored.
func (s *DefaultBookingService) Commit(ctx context.Context, session models.DialogSession) (*models.TrialLesson, error) {
	if err := validateComplete(session); err != nil {
		return nil, err
	}

	course, err := s.Courses.GetByID(session.SelectedCourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected course: %w", err)
	}
	if !course.AgeEligible(session.ChildAge) {
		return nil, fmt.Errorf("course %s does not admit age %d", course.ID, session.ChildAge)
	}

	var location *models.Location
	if session.SelectedLocationID != "" {
		location, err = s.Locations.GetByID(session.SelectedLocationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load selected location: %w", err)
		}
	}

	user := models.User{
		ID:             uuid.New().String(),
		ChatID:         session.ChatID,
		ParentName:     session.ParentName,
		Phone:          session.Phone,
		ChildName:      session.ChildName,
		ChildAge:       session.ChildAge,
		ChildInterests: session.ChildInterests,
	}
	trial := models.TrialLesson{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		CourseID:   course.ID,
		LocationID: session.SelectedLocationID,
		Date:       time.Now(),
		Confirmed:  false,
	}

	if err := s.Trials.CreateWithUser(ctx, &user, &trial); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if err := s.Notifier.BookingCreated(ctx, user, *course, location, trial); err != nil {
		s.Logger.Warn("Failed to enqueue admin notification",
			zap.String("trialId", trial.ID), zap.Error(err))
	}

	return &trial, nil
}

func validateComplete(session models.DialogSession) error {
	switch {
	case session.ChildName == "":
		return fmt.Errorf("incomplete profile: child name missing")
	case session.ChildAge == 0:
		return fmt.Errorf("incomplete profile: child age missing")
	case session.ParentName == "":
		return fmt.Errorf("incomplete profile: parent name missing")
	case session.Phone == "":
		return fmt.Errorf("incomplete profile: phone missing")
	case session.SelectedCourseID == "":
		return fmt.Errorf("incomplete profile: no course selected")
	}
	return nil
}
