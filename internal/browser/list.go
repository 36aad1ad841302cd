package browser

import (
	"context"

	"github.com/spec-kit/videogames-portal/internal/catalog"
	"github.com/spec-kit/videogames-portal/internal/domain"
	"github.com/spec-kit/videogames-portal/internal/session"
)

// FetchState enumerates the fetch-then-render states shared by the
// list and detail views.
type FetchState int

const (
	FetchLoading FetchState = iota
	FetchLoaded
	FetchErrored
)

// listErrorMessage is the fixed user-facing message when the list
// fetch fails. The list view offers no retry action.
const listErrorMessage = "Error loading the video games. Please try again."

// ListView fetches and renders the catalog list with its aggregates.
type ListView struct {
	provider catalog.Provider
	store    session.Store

	state   FetchState
	items   []domain.VideoGame
	summary catalog.Summary
	msg     string
}

// NewListView builds the view; Load starts the fetch.
func NewListView(provider catalog.Provider, store session.Store) *ListView {
	return &ListView{provider: provider, store: store}
}

// State returns the current view state.
func (v *ListView) State() FetchState { return v.state }

// Items returns the fetched catalog, valid in the Loaded state.
func (v *ListView) Items() []domain.VideoGame { return v.items }

// Summary returns the list aggregates, valid in the Loaded state.
func (v *ListView) Summary() catalog.Summary { return v.summary }

// Message returns the user-facing error message, if any.
func (v *ListView) Message() string { return v.msg }

// Load runs the fetch transition. A result arriving after ctx is
// cancelled is discarded by the caller abandoning the view.
func (v *ListView) Load(ctx context.Context) error {
	v.state = FetchLoading
	v.msg = ""

	items, err := v.provider.List(ctx)
	if err != nil {
		v.state = FetchErrored
		v.msg = listErrorMessage
		return err
	}

	v.state = FetchLoaded
	v.items = items
	v.summary = catalog.Summarize(items)
	return nil
}

// Logout clears the session. The shell navigates to the login view.
func (v *ListView) Logout() {
	v.store.Clear()
}
