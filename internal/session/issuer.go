package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/videogames-portal/internal/config"
	"github.com/spec-kit/videogames-portal/internal/domain"
	"github.com/spec-kit/videogames-portal/internal/simulate"
	apperrors "github.com/spec-kit/videogames-portal/pkg/util"
)

// Issuer mints opaque session tokens for a display name. No real
// identity provider is contacted; the token is derived locally after a
// simulated network delay.
type Issuer struct {
	store Store
	ttl   time.Duration
	delay time.Duration
	now   func() time.Time
	rand  io.Reader
}

// NewIssuer builds an issuer writing into the given store.
func NewIssuer(store Store, cfg config.SessionConfig) *Issuer {
	return &Issuer{
		store: store,
		ttl:   cfg.TokenTTL,
		delay: cfg.IssueDelay,
		now:   time.Now,
		rand:  rand.Reader,
	}
}

// Issue derives a token for name, waits out the simulated latency,
// stores the token, and returns it with a computed expiry of now + TTL.
// The expiry is informational; nothing enforces it. Callers validate
// name before calling; an empty name still yields a syntactically valid
// token. On failure nothing is stored.
func (i *Issuer) Issue(ctx context.Context, name string) (domain.IssuedToken, error) {
	token, err := i.mint(name)
	if err != nil {
		return domain.IssuedToken{}, apperrors.NewIssuanceError(err)
	}

	if err := simulate.Latency(ctx, i.delay); err != nil {
		return domain.IssuedToken{}, apperrors.NewIssuanceError(err)
	}

	i.store.Set(token)
	return domain.IssuedToken{
		Token:     token,
		ExpiresAt: i.now().Add(i.ttl),
	}, nil
}

// mint concatenates a name fragment, the current epoch millis, and a
// random base-36 suffix: base64(name)[:8] "." millis "." suffix.
func (i *Issuer) mint(name string) (domain.Token, error) {
	namePart := base64.StdEncoding.EncodeToString([]byte(name))
	if len(namePart) > 8 {
		namePart = namePart[:8]
	}

	var buf [8]byte
	if _, err := io.ReadFull(i.rand, buf[:]); err != nil {
		return "", err
	}
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)

	parts := []string{
		namePart,
		strconv.FormatInt(i.now().UnixMilli(), 10),
		suffix,
	}
	return domain.Token(strings.Join(parts, ".")), nil
}
