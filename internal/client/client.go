package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spec-kit/videogames-portal/internal/api/dto"
	"github.com/spec-kit/videogames-portal/internal/catalog"
	"github.com/spec-kit/videogames-portal/internal/domain"
	"github.com/spec-kit/videogames-portal/internal/session"
	apperrors "github.com/spec-kit/videogames-portal/pkg/util"
)

// Client is the portal API client. It satisfies catalog.Provider for
// the browser's list/detail views and issues tokens through the login
// endpoint. Guard redirects are not followed; they surface as
// unauthorized errors instead.
type Client struct {
	baseURL string
	store   session.Store
	http    *http.Client
}

// New builds a client against baseURL, storing issued tokens in store.
func New(baseURL string, store session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		http: &http.Client{
			Transport: &AuthorizedTransport{Store: store},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

type errorEnvelope struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

// Issue requests a token for name from the portal API and stores it in
// the local session store before returning it.
func (c *Client) Issue(ctx context.Context, name string) (domain.IssuedToken, error) {
	body, err := json.Marshal(dto.TokenRequest{Name: name})
	if err != nil {
		return domain.IssuedToken{}, apperrors.NewIssuanceError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token", bytes.NewReader(body))
	if err != nil {
		return domain.IssuedToken{}, apperrors.NewIssuanceError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.IssuedToken{}, apperrors.NewIssuanceError(err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return domain.IssuedToken{}, remoteError(resp)
	}

	var payload struct {
		Data dto.AuthResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.IssuedToken{}, apperrors.NewIssuanceError(err)
	}

	issued := domain.IssuedToken{
		Token:     domain.Token(payload.Data.Token),
		ExpiresAt: payload.Data.ExpiresAt,
	}
	c.store.Set(issued.Token)
	return issued, nil
}

// List fetches the catalog list view.
func (c *Client) List(ctx context.Context) ([]domain.VideoGame, error) {
	resp, err := c.get(ctx, "/video-games")
	if err != nil {
		return nil, apperrors.NewFetchError(err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp)
	}

	var payload struct {
		Data dto.ListResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewFetchError(err)
	}
	return payload.Data.Items, nil
}

// GetByID fetches one item's detail view. A 404 maps back to the
// catalog not-found error carrying the requested id.
func (c *Client) GetByID(ctx context.Context, id string) (domain.VideoGame, error) {
	resp, err := c.get(ctx, "/video-games/"+id)
	if err != nil {
		return domain.VideoGame{}, apperrors.NewFetchError(err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return domain.VideoGame{}, &catalog.NotFoundError{ID: id}
	}
	if resp.StatusCode != http.StatusOK {
		return domain.VideoGame{}, remoteError(resp)
	}

	var payload struct {
		Data dto.DetailResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.VideoGame{}, apperrors.NewFetchError(err)
	}
	return payload.Data.Game, nil
}

// Logout clears the session on the server and locally.
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/auth/token", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	drainAndClose(resp.Body)

	c.store.Clear()
	return nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.http.Do(req)
}

// remoteError reconstructs a domain error from the server's error
// envelope. A guard redirect arrives here as a 302.
func remoteError(resp *http.Response) error {
	if resp.StatusCode == http.StatusFound {
		return apperrors.NewUnauthorized("session required")
	}

	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error.Code == "" {
		return apperrors.NewFetchError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return apperrors.NewDomainError(
		envelope.Error.Code,
		envelope.Error.Message,
		resp.StatusCode,
		envelope.Error.Details,
	)
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
