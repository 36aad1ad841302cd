package catalog

import (
	"context"

	"github.com/spec-kit/videogames-portal/internal/config"
	"github.com/spec-kit/videogames-portal/internal/domain"
	"github.com/spec-kit/videogames-portal/internal/simulate"
)

// StaticProvider serves the fixed five-item catalog after a simulated
// network delay. The list payload carries the short descriptions; the
// detail payload swaps in the long ones.
type StaticProvider struct {
	delays  config.CatalogConfig
	items   []domain.VideoGame
	details []domain.VideoGame
}

// NewStaticProvider builds the provider with the fixture data.
func NewStaticProvider(cfg config.CatalogConfig) *StaticProvider {
	return &StaticProvider{
		delays:  cfg,
		items:   fixtureList,
		details: fixtureDetails,
	}
}

// List returns the catalog in fixed order after the list delay.
func (p *StaticProvider) List(ctx context.Context) ([]domain.VideoGame, error) {
	if err := simulate.Latency(ctx, p.delays.ListDelay); err != nil {
		return nil, err
	}
	items := make([]domain.VideoGame, len(p.items))
	copy(items, p.items)
	return items, nil
}

// GetByID scans the fixed set for an exact id match after the detail
// delay. The set is small enough that no index is warranted.
func (p *StaticProvider) GetByID(ctx context.Context, id string) (domain.VideoGame, error) {
	if err := simulate.Latency(ctx, p.delays.DetailDelay); err != nil {
		return domain.VideoGame{}, err
	}
	for _, game := range p.details {
		if game.ID == id {
			return game, nil
		}
	}
	return domain.VideoGame{}, &NotFoundError{ID: id}
}
