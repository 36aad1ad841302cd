package domain

// VideoGame is one fixed catalog record shown in the list and detail views.
// The full set is fixed at process start; records are never created,
// mutated, or deleted.
type VideoGame struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Platform    string  `json:"platform"`
	ReleaseYear int     `json:"releaseYear"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
}
