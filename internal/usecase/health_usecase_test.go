package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"episolve-backend/internal/domain"
	"episolve-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthUsecase_Check(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all ok", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.Pinger{"database": ok}, time.Second)

		status, healthy := uc.Check(context.Background())

		assert.True(t, healthy)
		assert.Equal(t, domain.DependencyStatus{"database": "ok"}, status)
	})

	t.Run("one down", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.Pinger{"database": ok, "redis": down}, time.Second)

		status, healthy := uc.Check(context.Background())

		assert.False(t, healthy)
		assert.Equal(t, "ok", status["database"])
		assert.Equal(t, "down", status["redis"])
	})

	t.Run("ping gets a deadline", func(t *testing.T) {
		var hadDeadline bool
		uc := usecase.NewHealthUsecase(map[string]usecase.Pinger{"database": func(ctx context.Context) error {
			_, hadDeadline = ctx.Deadline()
			return nil
		}}, time.Second)

		uc.Check(context.Background())

		assert.True(t, hadDeadline)
	})
}
