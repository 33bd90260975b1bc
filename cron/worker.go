package cron

import (
	"context"
	"encoding/json"
	"log"

	"mazdoor/config"
	"mazdoor/services/booking"
	"mazdoor/services/tasks"

	"github.com/hibiken/asynq"
)

// RedisOpt returns the asynq Redis connection settings from AppConfig.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// InitExpiryWorker starts the async worker that processes deferred
// booking-expiry tasks. Returns the server so main can shut it down.
func InitExpiryWorker(bookingSvc booking.BookingService) *asynq.Server {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingExpire, handleExpiryTask(bookingSvc))

	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ExpiryWorker] worker stopped: %v", err)
		}
	}()

	return srv
}

func handleExpiryTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingExpiryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ExpiryWorker] invalid payload: %v", err)
			return err
		}
		return bookingSvc.ExpireBooking(p.BookingID)
	}
}
