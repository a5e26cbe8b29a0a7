package cron

import (
	"context"
	"log"
	"time"

	"campusbook/config"
	"campusbook/services/availability"

	"github.com/hibiken/asynq"
)

const TypeCacheSweep = "availability:sweep"

// InitCacheSweeper runs a background worker that drops availability-cache
// entries for dates already in the past. This is memory housekeeping only;
// freshness of live entries stays under caller control via forceRefresh.
func InitCacheSweeper(cache *availability.BusyCache) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCacheSweep, handleCacheSweepTask(cache))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	// Shortly after midnight, once yesterday's entries can no longer be queried.
	if _, err := scheduler.Register("5 0 * * *", asynq.NewTask(TypeCacheSweep, nil)); err != nil {
		log.Printf("[CacheSweeper] failed to register sweep schedule: %v", err)
		return
	}

	go func() {
		log.Println("[CacheSweeper] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CacheSweeper] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Println("[CacheSweeper] max retry attempts reached, giving up")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[CacheSweeper] scheduler stopped: %v", err)
		}
	}()
}

func handleCacheSweepTask(cache *availability.BusyCache) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := time.Now().Format("2006-01-02")
		removed := cache.SweepBefore(today)
		log.Printf("[CacheSweeper] removed %d stale cache entries before %s", removed, today)
		return nil
	}
}
