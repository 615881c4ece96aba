package newsportal

import (
	"context"
	"log/slog"
	"time"
)

// Publisher runs PublishScheduled on a fixed interval.
type Publisher struct {
	manager *Manager
	logger  *slog.Logger
}

func NewPublisher(manager *Manager, logger *slog.Logger) *Publisher {
	return &Publisher{
		manager: manager,
		logger:  logger,
	}
}

// Run blocks until ctx is done. A non-positive interval disables it.
func (p *Publisher) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		p.logger.Info("scheduled publisher disabled")
		return
	}

	p.logger.Info("scheduled publisher started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scheduled publisher stopped")
			return
		case <-ticker.C:
			p.publish(ctx)
		}
	}
}

func (p *Publisher) publish(ctx context.Context) {
	result, err := p.manager.PublishScheduled(ctx)
	if err != nil {
		p.logger.Error("scheduled publish failed", "error", err)
		return
	}

	if result.Count > 0 {
		p.logger.Info("scheduled news published", "count", result.Count, "titles", result.Titles)
	}
}
