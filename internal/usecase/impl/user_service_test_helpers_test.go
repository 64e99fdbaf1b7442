package impl

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"gatehouse/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingHasher counts Check calls that reached a bcrypt comparison.
type countingHasher struct {
	service.PasswordHasher

	completedChecks atomic.Int64
}

func (h *countingHasher) Check(ctx context.Context, password, hash string) (bool, error) {
	ok, err := h.PasswordHasher.Check(ctx, password, hash)
	if err == nil {
		h.completedChecks.Add(1)
	}

	return ok, err
}
