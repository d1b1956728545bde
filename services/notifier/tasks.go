package notifier

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeBookingNotify = "notify:booking"

// BookingNotifyPayload carries the pre-rendered admin message for one booking.
type BookingNotifyPayload struct {
	Message string `json:"message"`
}

// NewBookingNotifyTask builds the queue task for an admin broadcast.
func NewBookingNotifyTask(message string) (*asynq.Task, error) {
	b, err := json.Marshal(BookingNotifyPayload{Message: message})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingNotify, b), nil
}
