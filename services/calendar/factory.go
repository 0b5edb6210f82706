package calendar

import (
	"context"
	"os"

	"go.uber.org/zap"
)

// Backend modes reported to the health endpoint.
const (
	ModeGoogle   = "google"
	ModeInMemory = "in-memory"
)

// NewBackend selects the live Google backend when the service-account
// credentials file is readable, and silently substitutes the in-memory fake
// otherwise. Both satisfy the same contract, so downstream code never learns
// which one it got.
func NewBackend(ctx context.Context, credentialsFile, calendarID string, logger *zap.Logger) (Backend, string) {
	if credentialsFile != "" {
		if _, err := os.Stat(credentialsFile); err == nil {
			backend, err := NewGoogleBackend(ctx, credentialsFile, calendarID, logger)
			if err == nil {
				logger.Info("Using Google Calendar backend", zap.String("calendarID", calendarID))
				return backend, ModeGoogle
			}
			logger.Warn("Failed to initialize Google Calendar backend, falling back to in-memory backend", zap.Error(err))
		} else {
			logger.Warn("Google credentials file not found, using in-memory calendar backend",
				zap.String("file", credentialsFile))
		}
	}
	return NewInMemoryBackend(), ModeInMemory
}
