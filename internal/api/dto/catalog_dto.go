package dto

import (
	"github.com/spec-kit/videogames-portal/internal/catalog"
	"github.com/spec-kit/videogames-portal/internal/domain"
)

// ListResponse is the payload of the catalog list view.
type ListResponse struct {
	Items   []domain.VideoGame `json:"items"`
	Summary catalog.Summary    `json:"summary"`
}

// DetailResponse is the payload of the catalog detail view.
type DetailResponse struct {
	Game        domain.VideoGame `json:"game"`
	Stars       [5]bool          `json:"stars"`
	FilledStars int              `json:"filled_stars"`
}
