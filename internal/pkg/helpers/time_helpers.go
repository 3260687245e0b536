package helpers

import (
	"time"

	"github.com/academyadmin/academy-api/internal/pkg/logger"
)

// ParseDuration parses a duration string, returns the fallback when the
// string is empty, malformed or not positive.
func ParseDuration(durationStr string, fallback time.Duration) time.Duration {
	if durationStr == "" {
		return fallback
	}

	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration <= 0 {
		logger.Warn().Err(err).Str("durationStr", durationStr).Dur("fallback", fallback).Msg("Invalid duration, using fallback")
		return fallback
	}
	return duration
}
