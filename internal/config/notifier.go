package config

import (
	"fmt"
	"time"
)

// NotifierConfig holds best-effort notification dispatcher configuration.
type NotifierConfig struct {
	// BufferSize is the capacity of the outbound event queue.
	// Events are dropped (and logged) once the queue is full.
	BufferSize int
	// MaxAttempts is the number of delivery attempts per event.
	MaxAttempts int
	// InitialDelay is the delay before the first redelivery attempt.
	InitialDelay time.Duration
	// MaxDelay caps the backoff between redelivery attempts.
	MaxDelay time.Duration
}

// LoadNotifierConfigFromEnv loads notifier configuration from environment variables.
func LoadNotifierConfigFromEnv() NotifierConfig {
	return NotifierConfig{
		BufferSize:   GetEnvInt("NOTIFIER_BUFFER_SIZE", 256),
		MaxAttempts:  GetEnvInt("NOTIFIER_MAX_ATTEMPTS", 3),
		InitialDelay: GetEnvDuration("NOTIFIER_INITIAL_DELAY", 500*time.Millisecond),
		MaxDelay:     GetEnvDuration("NOTIFIER_MAX_DELAY", 10*time.Second),
	}
}

// Validate validates notifier configuration.
func (c NotifierConfig) Validate() error {
	if c.BufferSize <= 0 {
		return fmt.Errorf("BufferSize must be greater than 0")
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("MaxAttempts must be greater than 0")
	}
	if c.InitialDelay <= 0 {
		return fmt.Errorf("InitialDelay must be greater than 0")
	}
	if c.MaxDelay < c.InitialDelay {
		return fmt.Errorf("MaxDelay (%s) cannot be less than InitialDelay (%s)", c.MaxDelay, c.InitialDelay)
	}
	return nil
}
