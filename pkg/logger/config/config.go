package config

import (
	"errors"
	"time"
)

// log levels, same values as zapcore.Level.
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	DPANIC_LEVEL
	PANIC_LEVEL
	FATAL_LEVEL
)

var (
	ErrInvalidLevel      = errors.New("invalid LOG_LEVEL, must be between -1 (debug) and 5 (fatal)")
	ErrInvalidTimeFormat = errors.New("invalid LOG_TIME_FORMAT")
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return ErrInvalidLevel
	}
	if c.TimeFormat == "" {
		return ErrInvalidTimeFormat
	}
	// layouts without any reference component format every instant the same way
	if time.Unix(0, 0).UTC().Format(c.TimeFormat) == time.Unix(86400*365+3661, 0).UTC().Format(c.TimeFormat) {
		return ErrInvalidTimeFormat
	}
	return nil
}
