package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/videogames-portal/internal/api/dto"
	"github.com/spec-kit/videogames-portal/internal/catalog"
	apperrors "github.com/spec-kit/videogames-portal/pkg/util"
)

// CatalogHandler serves the list and detail views of the catalog.
type CatalogHandler struct {
	provider catalog.Provider
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(provider catalog.Provider) *CatalogHandler {
	return &CatalogHandler{provider: provider}
}

// List handles GET /video-games.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	items, err := h.provider.List(c.UserContext())
	if err != nil {
		return apperrors.NewFetchError(err)
	}

	return c.JSON(fiber.Map{
		"data": dto.ListResponse{
			Items:   items,
			Summary: catalog.Summarize(items),
		},
	})
}

// Detail handles GET /video-games/:id. An unknown id surfaces as 404
// carrying the requested id; other provider failures map to a generic
// fetch error.
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id := c.Params("id")

	game, err := h.provider.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return apperrors.NewNotFound("game", map[string]any{"requested_id": id})
		}
		return apperrors.NewFetchError(err)
	}

	return c.JSON(fiber.Map{
		"data": dto.DetailResponse{
			Game:        game,
			Stars:       catalog.Stars(game.Rating),
			FilledStars: catalog.FilledStars(game.Rating),
		},
	})
}
