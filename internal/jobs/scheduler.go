package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"flashbooth/internal/pkg/clock"
	"flashbooth/internal/pkg/config"
)

// Scheduler runs the daily booking maintenance: completing past events and
// reminding tomorrow's customers.
type Scheduler struct {
	cron     *cron.Cron
	pool     *pgxpool.Pool
	clock    clock.Clock
	notifier Notifier
	cfg      config.SchedulerConfig
}

func NewScheduler(pool *pgxpool.Pool, clk clock.Clock, notifier Notifier, cfg config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		pool:     pool,
		clock:    clk,
		notifier: notifier,
		cfg:      cfg,
	}
}

func (s *Scheduler) Start() error {
	if !s.cfg.Enabled {
		slog.Info("scheduler disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.DailySpec, s.RunDaily); err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("scheduler started", "spec", s.cfg.DailySpec)
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// RunDaily is also callable directly for manual catch-up runs.
func (s *Scheduler) RunDaily() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s.completePastBookings(ctx)
	s.sendTomorrowReminders(ctx)
}

// completePastBookings closes out confirmed bookings whose event day has
// passed. Pending ones stay pending so the back office notices them.
func (s *Scheduler) completePastBookings(ctx context.Context) {
	const query = `
		UPDATE bookings
		SET status = 'completed', updated_at = now()
		WHERE status = 'confirmed' AND event_date < $1`

	tag, err := s.pool.Exec(ctx, query, s.clock.Now())
	if err != nil {
		slog.Error("failed to complete past bookings", "error", err)
		return
	}
	if n := tag.RowsAffected(); n > 0 {
		slog.Info("completed past bookings", "count", n)
	}
}

func (s *Scheduler) sendTomorrowReminders(ctx context.Context) {
	const query = `
		SELECT c.phone, c.first_name, p.name,
		       to_char(b.event_date, 'DD/MM/YYYY'), b.event_time
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN products p ON p.id = b.product_id
		WHERE b.status = 'confirmed' AND b.event_date = $1`

	tomorrow := s.clock.Now().AddDate(0, 0, 1)

	rows, err := s.pool.Query(ctx, query, tomorrow)
	if err != nil {
		slog.Error("failed to load tomorrow's bookings", "error", err)
		return
	}
	defer rows.Close()

	sent := 0
	for rows.Next() {
		var phone, firstName, productName, eventDate, eventTime string
		if err := rows.Scan(&phone, &firstName, &productName, &eventDate, &eventTime); err != nil {
			slog.Error("failed to scan reminder row", "error", err)
			return
		}
		if phone == "" {
			continue
		}
		if err := s.notifier.SendBookingReminder(phone, firstName, productName, eventDate, eventTime); err != nil {
			slog.Error("failed to send reminder", "to", phone, "error", err)
			continue
		}
		sent++
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read reminder rows", "error", err)
	}
	if sent > 0 {
		slog.Info("booking reminders sent", "count", sent)
	}
}
