package linecount

import (
	"context"

	"line-counter/core/job"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service counts objects of the configured bucket on demand.
type Service struct {
	settings  job.Settings
	newClient ClientFactory
	opts      Options
	logger    *zap.Logger
	group     singleflight.Group
}

// NewService creates a new line count service.
func NewService(settings job.Settings, newClient ClientFactory, opts Options, logger *zap.Logger) *Service {
	return &Service{
		settings:  settings,
		newClient: newClient,
		opts:      opts,
		logger:    logger,
	}
}

// Count counts the lines of key, or of the configured file path when key is empty.
// Concurrent calls for the same key share a single read of the object.
func (s *Service) Count(ctx context.Context, key string) (Report, error) {
	settings := s.settings
	if key != "" {
		settings.FilePath = key
	}

	v, err, shared := s.group.Do(settings.FilePath, func() (any, error) {
		return NewRunner(s.newClient, s.opts, s.logger, nil).Run(ctx, settings)
	})
	if shared {
		s.logger.Debug("Shared in-flight count", zap.String("key", settings.FilePath))
	}
	if err != nil {
		return Report{}, err
	}
	return v.(Report), nil
}
