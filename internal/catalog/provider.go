// Package catalog serves the fixed video-game catalog behind a
// provider contract a real backend could implement later.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/spec-kit/videogames-portal/internal/domain"
)

// ErrNotFound reports a lookup for an id absent from the catalog.
var ErrNotFound = errors.New("game not found")

// NotFoundError carries the requested id alongside ErrNotFound so the
// detail view can stay distinguishable from a generic fetch failure.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("game %q not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Provider returns catalog items. Implementations must honor context
// cancellation on both calls.
type Provider interface {
	// List returns the full catalog in fixed order.
	List(ctx context.Context) ([]domain.VideoGame, error)
	// GetByID returns the item whose ID matches exactly, or a
	// NotFoundError.
	GetByID(ctx context.Context, id string) (domain.VideoGame, error)
}
