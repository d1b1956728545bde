package notifier

import (
	"context"
	"fmt"

	"coursebot/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Notifier announces new bookings to staff. Delivery is best-effort: a
// failure here must never fail or roll back the booking itself.
type Notifier interface {
	BookingCreated(ctx context.Context, user models.User, course models.Course, location *models.Location, trial models.TrialLesson) error
}

// AsynqNotifier enqueues the broadcast onto the Redis task queue; the
// background worker performs the per-admin fan-out.
type AsynqNotifier struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func (n *AsynqNotifier) BookingCreated(ctx context.Context, user models.User, course models.Course, location *models.Location, trial models.TrialLesson) error {
	task, err := NewBookingNotifyTask(FormatBookingMessage(user, course, location, trial))
	if err != nil {
		return fmt.Errorf("failed to build booking notify task: %w", err)
	}
	if _, err := n.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue booking notification: %w", err)
	}
	return nil
}

// FormatBookingMessage renders the staff notification for one new booking.
func FormatBookingMessage(user models.User, course models.Course, location *models.Location, trial models.TrialLesson) string {
	msg := fmt.Sprintf(
		"Новая запись на пробное занятие:\n\n"+
			"Родитель: %s\n"+
			"Телефон: %s\n"+
			"Ребенок: %s (%d лет)\n"+
			"Интересы: %s\n"+
			"Выбранный курс: %s\n"+
			"Описание курса: %s\n"+
			"Возрастные ограничения курса: %d-%d лет\n",
		user.ParentName,
		user.Phone,
		user.ChildName,
		user.ChildAge,
		user.ChildInterests,
		course.Name,
		course.Description,
		course.MinAge,
		course.MaxAge,
	)
	if location != nil {
		msg += fmt.Sprintf("Локация: %s, %s\n", location.District, location.Address)
	}
	msg += fmt.Sprintf("Дата записи: %s", trial.Date.Format("02.01.2006 15:04"))
	return msg
}
