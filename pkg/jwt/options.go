package jwt

import (
	"strconv"
	"strings"
	"time"
)

const hoursInDay = 24

// ParseDuration accepts Go durations plus whole days ("7d"). Empty, invalid or non-positive values
// yield fallback.
func ParseDuration(s string, fallback time.Duration) time.Duration {
	s = strings.TrimSpace(s)

	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return fallback
		}

		return time.Duration(n) * hoursInDay * time.Hour
	}

	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}

	return d
}
