package notifier

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"coursebot/channel"
	"coursebot/config"
	adminRepo "coursebot/database/repository/admin"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewQueueClient creates the asynq client producers enqueue onto.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// InitNotifyWorker runs the async broadcast worker in the background.
func InitNotifyWorker(admins adminRepo.AdminRepository, ch channel.Channel, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingNotify, handleBookingNotify(admins, ch, logger))

	go func() {
		log.Println("[NotifyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleBookingNotify fans the rendered message out to every admin chat.
// A failure for one admin is logged and must not block the others, so the
// task itself always succeeds once the payload decodes.
func handleBookingNotify(admins adminRepo.AdminRepository, ch channel.Channel, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p BookingNotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid booking notify payload", zap.Error(err))
			return err
		}

		ids, err := admins.GetAllChatIDs()
		if err != nil {
			logger.Error("Failed to list admin chat ids", zap.Error(err))
			return err
		}

		for _, id := range ids {
			if err := ch.SendText(ctx, id, p.Message); err != nil {
				logger.Warn("Failed to notify admin",
					zap.Int64("adminChatId", id), zap.Error(err))
			}
		}
		return nil
	}
}
