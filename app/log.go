package app

import (
	"time"

	"zuluface/hal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging points the global zerolog logger at the HAL line logger.
func SetupLogging(l hal.Logger, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        hal.LogWriter(l),
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}
	log.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
