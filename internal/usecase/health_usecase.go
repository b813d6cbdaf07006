package usecase

import (
	"context"
	"time"

	"episolve-backend/internal/domain"
	"episolve-backend/pkg/logger"
)

// Pinger reports whether a backing service is reachable.
type Pinger func(ctx context.Context) error

type healthUsecase struct {
	checks  map[string]Pinger
	timeout time.Duration
}

func NewHealthUsecase(checks map[string]Pinger, timeout time.Duration) domain.HealthUsecase {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &healthUsecase{checks: checks, timeout: timeout}
}

func (u *healthUsecase) Check(ctx context.Context) (domain.DependencyStatus, bool) {
	status := make(domain.DependencyStatus, len(u.checks))
	healthy := true

	for name, ping := range u.checks {
		pingCtx, cancel := context.WithTimeout(ctx, u.timeout)
		err := ping(pingCtx)
		cancel()

		if err != nil {
			logger.Log.Warn("health check failed", "dependency", name, "error", err)
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	return status, healthy
}
