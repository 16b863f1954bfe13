// Package timeouts provides centralized timeout values for handler operations.
//
// Handlers wrap every backend API call and audit write in context.WithTimeout
// using these values. Timeouts can be configured at startup using Configure();
// if not configured, the defaults are used.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks against MongoDB and the backend
//   - Read: single backend fetches (lists, analytics, chart)
//   - Write: backend mutations (login, create, confirm/fail) and audit writes
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing  = 2 * time.Second
	DefaultRead  = 10 * time.Second
	DefaultWrite = 15 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	ping  = DefaultPing
	read  = DefaultRead
	write = DefaultWrite
)

// Ping returns the timeout for connectivity checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Read returns the timeout for a single backend fetch.
func Read() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return read
}

// Write returns the timeout for a backend mutation.
func Write() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return write
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping  time.Duration
	Read  time.Duration
	Write time.Duration
}

// Configure sets custom timeout values. Call during startup before handlers
// are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Read > 0 {
		read = cfg.Read
	}
	if cfg.Write > 0 {
		write = cfg.Write
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	read = DefaultRead
	write = DefaultWrite
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Read: read, Write: write}
}

// WithTimeout derives a context bounded by d. When the deadline fires the
// operation name is logged once at Warn so slow backends show up in logs.
func WithTimeout(parent context.Context, d time.Duration, logger *zap.Logger, op string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, d)
	if logger == nil {
		return ctx, cancel
	}
	stop := context.AfterFunc(ctx, func() {
		if ctx.Err() == context.DeadlineExceeded {
			logger.Warn("operation timed out", zap.String("op", op), zap.Duration("timeout", d))
		}
	})
	return ctx, func() {
		stop()
		cancel()
	}
}
