package catalog

import (
	"fmt"
	"math"

	"github.com/spec-kit/videogames-portal/internal/domain"
)

// Summary holds the aggregate figures shown above the catalog list.
type Summary struct {
	Count         int      `json:"count"`
	AverageRating string   `json:"average_rating"`
	AveragePrice  string   `json:"average_price"`
	UniqueGenres  []string `json:"unique_genres"`
}

// Summarize computes list aggregates: item count, mean rating to one
// decimal place, mean price to two, and distinct genres in first-seen
// order.
func Summarize(items []domain.VideoGame) Summary {
	s := Summary{
		Count:         len(items),
		AverageRating: "0.0",
		AveragePrice:  "0.00",
		UniqueGenres:  uniqueGenres(items),
	}
	if len(items) == 0 {
		return s
	}

	var ratingSum, priceSum float64
	for _, game := range items {
		ratingSum += game.Rating
		priceSum += game.Price
	}
	s.AverageRating = fmt.Sprintf("%.1f", ratingSum/float64(len(items)))
	s.AveragePrice = fmt.Sprintf("%.2f", priceSum/float64(len(items)))
	return s
}

func uniqueGenres(items []domain.VideoGame) []string {
	seen := make(map[string]struct{}, len(items))
	genres := make([]string, 0, len(items))
	for _, game := range items {
		if _, ok := seen[game.Genre]; ok {
			continue
		}
		seen[game.Genre] = struct{}{}
		genres = append(genres, game.Genre)
	}
	return genres
}

// Stars maps a 0-10 rating onto a 5-star display: floor(rating/2)
// filled stars, clamped to [0, 5].
func Stars(rating float64) [5]bool {
	filled := int(math.Floor(rating / 2))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}

	var stars [5]bool
	for i := 0; i < filled; i++ {
		stars[i] = true
	}
	return stars
}

// FilledStars counts the filled positions of a star display.
func FilledStars(rating float64) int {
	count := 0
	for _, filled := range Stars(rating) {
		if filled {
			count++
		}
	}
	return count
}
