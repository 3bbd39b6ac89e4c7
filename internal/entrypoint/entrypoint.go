package entrypoint

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrlokans/eventbook/internal/config"
	"github.com/mrlokans/eventbook/internal/database"
	"github.com/mrlokans/eventbook/internal/prefs"
	"github.com/mrlokans/eventbook/internal/repository"
	"github.com/mrlokans/eventbook/internal/scheduler"
	"github.com/mrlokans/eventbook/internal/tasks"
)

// Run hosts the background services around the event store: the task queue
// and the reminder scheduler. The interactive surface (a mobile or desktop
// frontend) talks to the same database through the repository façade; this
// process only keeps the reminder pipeline moving.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Eventbook v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	repo := repository.New(db)
	prefsStore := prefs.New(db)

	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewSendReminderQueue(),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	var reminderScheduler *scheduler.ReminderScheduler
	if cfg.Reminders.Enabled && taskClient != nil {
		reminderScheduler = scheduler.NewReminderScheduler(
			repo, prefsStore, taskClient,
			cfg.Reminders.Schedule, cfg.Reminders.WindowDays,
		)
		if err := reminderScheduler.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start reminder scheduler: %v", err)
		}
	} else {
		log.Printf("Reminder scheduler: disabled")
	}

	// Wait for interrupt, then shut down within the configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	log.Printf("Shutting down, waiting up to %v", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if reminderScheduler != nil {
		reminderScheduler.Stop()
	}
	if taskClient != nil && taskCtxCancel != nil {
		taskClient.Stop(ctx)
		taskCtxCancel()
	}

	log.Println("Eventbook exiting")
}
