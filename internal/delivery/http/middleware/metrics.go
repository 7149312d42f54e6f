package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/pkg/metrics"
)

// Metrics records request count and latency labelled by route pattern, not raw path.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = "unmatched"
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		metrics.RecordHTTPRequest(c.Method(), path, strconv.Itoa(status), time.Since(start).Seconds())

		return err
	}
}
