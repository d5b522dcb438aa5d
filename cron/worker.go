package cron

import (
	"context"
	"log"
	"time"

	"gasthaus/config"
	"gasthaus/services/reservation"
	"gasthaus/services/tasks"

	"github.com/hibiken/asynq"
)

// InitCompletionWorker runs the async worker and its schedule in background.
// Once a night it sweeps accepted reservations whose date has passed and
// marks them completed.
func InitCompletionWorker(resSvc reservation.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCompletionSweep, handleCompletionSweep(resSvc))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("0 3 * * *", tasks.NewCompletionSweepTask()); err != nil {
		log.Fatalf("[CompletionWorker] failed to register sweep schedule: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[CompletionWorker] scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[CompletionWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CompletionWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CompletionWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleCompletionSweep(resSvc reservation.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		completed, err := resSvc.CompleteSweep(ctx)
		if err != nil {
			log.Printf("[CompletionSweep] sweep failed: %v", err)
			return err
		}
		if completed > 0 {
			log.Printf("[CompletionSweep] marked %d reservations completed", completed)
		}
		return nil
	}
}
