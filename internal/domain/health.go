package domain

import "context"

// DependencyStatus maps a backing service name to "ok" or "down".
type DependencyStatus map[string]string

type HealthUsecase interface {
	// Check pings every dependency; healthy is false if any is down.
	Check(ctx context.Context) (status DependencyStatus, healthy bool)
}
