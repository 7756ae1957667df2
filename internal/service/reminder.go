// Package service holds background jobs that run beside the HTTP server.
package service

import (
	"context"
	"log"
	"time"

	"github.com/todotask/backend/internal/model"
	"github.com/todotask/backend/internal/queue"
	"github.com/todotask/backend/internal/repository"
)

// ReminderSweep periodically walks all users and publishes one reminder
// event per user who has overdue tasks or tasks due tomorrow.  The
// consumer turns those events into email; this side only queries and
// publishes, so a broker outage costs nothing but a log line.
type ReminderSweep struct {
	Users    *repository.UserRepo
	Tasks    *repository.TaskRepo
	Interval time.Duration
}

func NewReminderSweep(u *repository.UserRepo, t *repository.TaskRepo, interval time.Duration) *ReminderSweep {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &ReminderSweep{Users: u, Tasks: t, Interval: interval}
}

// Run blocks until ctx is cancelled, sweeping once immediately and then
// on every tick.
func (s *ReminderSweep) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ReminderSweep) sweep(ctx context.Context) {
	now := time.Now()
	today := repository.Today(now)
	tomorrow := repository.Today(now.AddDate(0, 0, 1))

	qctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	users, err := s.Users.ListAll(qctx)
	if err != nil {
		log.Printf("reminder-sweep: list users failed: %v", err)
		return
	}

	published := 0
	for _, u := range users {
		if u.Email == "" {
			continue
		}

		overdue, err := s.Tasks.ListOverdue(qctx, u.ID, today)
		if err != nil {
			log.Printf("reminder-sweep: overdue query for user %d failed: %v", u.ID, err)
			continue
		}
		dueTomorrow, err := s.Tasks.ListDueOn(qctx, u.ID, tomorrow)
		if err != nil {
			log.Printf("reminder-sweep: due-tomorrow query for user %d failed: %v", u.ID, err)
			continue
		}
		if len(overdue) == 0 && len(dueTomorrow) == 0 {
			continue
		}

		ev := queue.TaskReminderEvent{
			UserID:      u.ID,
			Name:        u.Name,
			Email:       u.Email,
			Overdue:     reminderTasks(overdue),
			DueTomorrow: reminderTasks(dueTomorrow),
			SweptAt:     now.UTC().Format(time.RFC3339),
		}
		// Best effort: PublishTaskReminder already logged the failure.
		if err := queue.PublishTaskReminder(qctx, ev); err == nil {
			published++
		}
	}
	log.Printf("reminder-sweep: done, %d reminder(s) published for %d user(s)", published, len(users))
}

func reminderTasks(tasks []model.Task) []queue.ReminderTask {
	out := make([]queue.ReminderTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, queue.ReminderTask{Title: t.Title, DueDate: t.DueDate})
	}
	return out
}
