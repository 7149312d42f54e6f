package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/savioruz/reserva/config"
	"github.com/savioruz/reserva/internal/domains/bookings/service"
	"github.com/savioruz/reserva/pkg/logger"
)

// Cron schedules the pending booking sweep. The returned scheduler must be stopped on shutdown.
func Cron(scheduler *service.SchedulerService, cfg *config.Config, l logger.Interface) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(cfg.Schedule.BookingsExpiration, func() {
		ctx := context.WithoutCancel(context.Background())

		expired, err := scheduler.ExpirePendingBookings(ctx)
		if err != nil {
			l.Error("cron - ExpirePendingBookings failed: " + err.Error())

			return
		}

		if expired > 0 {
			l.Info(fmt.Sprintf("cron - ExpirePendingBookings expired %d bookings", expired))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("cron - AddFunc: %w", err)
	}

	c.Start()

	return c, nil
}
