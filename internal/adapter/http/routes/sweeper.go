package routes

import (
	"context"
	"time"

	"quote_matrix/internal/infrastructure/config"
	"quote_matrix/internal/usecase"

	"go.uber.org/zap"
)

// runSessionSweeper evicts idle matrix sessions every cfg.SweepInterval until ctx ends.
func runSessionSweeper(ctx context.Context, uc usecase.IMatrixSessionUseCase, cfg config.SessionConfig, logger *zap.Logger) error {
	ticker := time.NewTicker(cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := uc.EvictIdleSessions(ctx, cfg.TTL); err != nil {
				logger.Warn("[matrix][sweeper] eviction failed", zap.Error(err))
			}
		}
	}
}
