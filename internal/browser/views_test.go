package browser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/videogames-portal/internal/config"
	"github.com/spec-kit/videogames-portal/internal/domain"
	"github.com/spec-kit/videogames-portal/internal/session"
)

type stubIssuer struct {
	store session.Store
	err   error
	calls int
}

func (s *stubIssuer) Issue(_ context.Context, name string) (domain.IssuedToken, error) {
	s.calls++
	if s.err != nil {
		return domain.IssuedToken{}, s.err
	}
	token := domain.Token("stub." + name)
	if s.store != nil {
		s.store.Set(token)
	}
	return domain.IssuedToken{Token: token, ExpiresAt: time.Now().Add(24 * time.Hour)}, nil
}

type stubProvider struct {
	items   []domain.VideoGame
	listErr error
	getErr  error
}

func (s *stubProvider) List(context.Context) ([]domain.VideoGame, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *stubProvider) GetByID(_ context.Context, id string) (domain.VideoGame, error) {
	if s.getErr != nil {
		return domain.VideoGame{}, s.getErr
	}
	for _, game := range s.items {
		if game.ID == id {
			return game, nil
		}
	}
	return domain.VideoGame{}, errors.New("missing")
}

func TestLoginViewValidationBlocksSubmission(t *testing.T) {
	issuer := &stubIssuer{}
	view := NewLoginView(issuer)

	for _, name := range []string{"", " ", "J", "  J  "} {
		err := view.Submit(context.Background(), name)
		require.Error(t, err, "name %q", name)
		assert.Equal(t, LoginIdle, view.State(), "name %q", name)
	}
	assert.Zero(t, issuer.calls, "validation failures must not reach the issuer")
}

func TestLoginViewSubmitSucceeds(t *testing.T) {
	store := session.NewMemoryStore()
	issuer := session.NewIssuer(store, config.SessionConfig{
		TokenTTL:   24 * time.Hour,
		IssueDelay: time.Millisecond,
	})
	view := NewLoginView(issuer)

	require.NoError(t, view.Submit(context.Background(), "  Jane Doe  "))
	assert.Equal(t, LoginSucceeded, view.State())
	assert.NotEmpty(t, view.Token())
	assert.True(t, session.IsAuthenticated(store))
}

func TestLoginViewFailureAllowsResubmission(t *testing.T) {
	issuer := &stubIssuer{err: errors.New("issuance down")}
	view := NewLoginView(issuer)

	require.Error(t, view.Submit(context.Background(), "Jane"))
	assert.Equal(t, LoginFailed, view.State())
	assert.Equal(t, "Error generating the token. Please try again.", view.Message())

	view.Edit()
	assert.Equal(t, LoginIdle, view.State())
	assert.Empty(t, view.Message())

	issuer.err = nil
	require.NoError(t, view.Submit(context.Background(), "Jane"))
	assert.Equal(t, LoginSucceeded, view.State())
}

func TestListViewLoadAndLogout(t *testing.T) {
	store := session.NewMemoryStore()
	store.Set("tok")
	provider := &stubProvider{items: []domain.VideoGame{
		{ID: "1", Title: "A", Genre: "RPG", Rating: 8, Price: 10},
		{ID: "2", Title: "B", Genre: "Action", Rating: 6, Price: 30},
	}}

	view := NewListView(provider, store)
	require.NoError(t, view.Load(context.Background()))

	assert.Equal(t, FetchLoaded, view.State())
	assert.Len(t, view.Items(), 2)
	assert.Equal(t, 2, view.Summary().Count)
	assert.Equal(t, "7.0", view.Summary().AverageRating)

	view.Logout()
	assert.False(t, session.IsAuthenticated(store))
}

func TestListViewErrored(t *testing.T) {
	view := NewListView(&stubProvider{listErr: errors.New("down")}, session.NewMemoryStore())

	require.Error(t, view.Load(context.Background()))
	assert.Equal(t, FetchErrored, view.State())
	assert.Equal(t, "Error loading the video games. Please try again.", view.Message())
}

func TestDetailViewLoadStarsAndPreview(t *testing.T) {
	store := session.NewMemoryStore()
	store.Set("abcdefgh-rest-of-token")
	provider := &stubProvider{items: []domain.VideoGame{
		{ID: "3", Title: "C", Rating: 7.8},
	}}

	view := NewDetailView(provider, store, "3")
	require.NoError(t, view.Load(context.Background()))

	assert.Equal(t, FetchLoaded, view.State())
	assert.Equal(t, "C", view.Game().Title)
	assert.Equal(t, [5]bool{true, true, true, false, false}, view.Stars())
	assert.Equal(t, "abcdefgh...", view.TokenPreview())

	store.Clear()
	assert.Equal(t, "not available", view.TokenPreview())
}

func TestDetailViewRetryAfterError(t *testing.T) {
	provider := &stubProvider{
		items:  []domain.VideoGame{{ID: "3", Title: "C"}},
		getErr: errors.New("down"),
	}
	view := NewDetailView(provider, session.NewMemoryStore(), "3")

	require.Error(t, view.Load(context.Background()))
	assert.Equal(t, FetchErrored, view.State())
	assert.Equal(t, "Error loading the video game details. Please check that the ID is correct.", view.Message())

	provider.getErr = nil
	require.NoError(t, view.Retry(context.Background()))
	assert.Equal(t, FetchLoaded, view.State())
	assert.Empty(t, view.Message())
}
