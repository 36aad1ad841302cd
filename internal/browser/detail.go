package browser

import (
	"context"

	"github.com/spec-kit/videogames-portal/internal/catalog"
	"github.com/spec-kit/videogames-portal/internal/domain"
	"github.com/spec-kit/videogames-portal/internal/session"
)

// detailErrorMessage is the fixed user-facing message when the detail
// fetch fails. A not-found id renders the same message; the error kind
// stays distinct underneath.
const detailErrorMessage = "Error loading the video game details. Please check that the ID is correct."

// DetailView fetches and renders one catalog item.
type DetailView struct {
	provider catalog.Provider
	store    session.Store
	id       string

	state FetchState
	game  domain.VideoGame
	msg   string
}

// NewDetailView builds the view for the id taken from the navigation
// path; Load starts the fetch.
func NewDetailView(provider catalog.Provider, store session.Store, id string) *DetailView {
	return &DetailView{provider: provider, store: store, id: id}
}

// State returns the current view state.
func (v *DetailView) State() FetchState { return v.state }

// Game returns the fetched item, valid in the Loaded state.
func (v *DetailView) Game() domain.VideoGame { return v.game }

// Message returns the user-facing error message, if any.
func (v *DetailView) Message() string { return v.msg }

// Stars returns the 5-star rendering of the item's 10-point rating.
func (v *DetailView) Stars() [5]bool {
	return catalog.Stars(v.game.Rating)
}

// TokenPreview returns the first characters of the stored token for
// display, or a placeholder when no session is held.
func (v *DetailView) TokenPreview() string {
	token, ok := v.store.Get()
	if !ok {
		return "not available"
	}
	s := string(token)
	if len(s) > 8 {
		s = s[:8]
	}
	return s + "..."
}

// Load runs the fetch transition.
func (v *DetailView) Load(ctx context.Context) error {
	v.state = FetchLoading
	v.msg = ""

	game, err := v.provider.GetByID(ctx, v.id)
	if err != nil {
		v.state = FetchErrored
		v.msg = detailErrorMessage
		return err
	}

	v.state = FetchLoaded
	v.game = game
	return nil
}

// Retry re-issues the fetch after an error.
func (v *DetailView) Retry(ctx context.Context) error {
	return v.Load(ctx)
}

// Logout clears the session. The shell navigates to the login view.
func (v *DetailView) Logout() {
	v.store.Clear()
}
