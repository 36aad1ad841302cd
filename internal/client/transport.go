// Package client talks to the portal API on behalf of the terminal
// browser, attaching the locally stored session token to every request.
package client

import (
	"net/http"

	"github.com/spec-kit/videogames-portal/internal/session"
)

// AuthorizedTransport decorates outgoing requests with the session
// token as a bearer credential. The store is consulted at dispatch
// time for every request, never cached, so a cleared session can never
// leak a stale token.
type AuthorizedTransport struct {
	Store session.Store
	Base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper. Requests dispatched without
// a stored token pass through unchanged.
func (t *AuthorizedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	token, ok := t.Store.Get()
	if !ok {
		return base.RoundTrip(req)
	}

	authReq := req.Clone(req.Context())
	authReq.Header.Set("Authorization", "Bearer "+string(token))
	return base.RoundTrip(authReq)
}
