// Package browser implements the terminal views of the portal: login,
// catalog list, and catalog detail, plus the navigation shell tying
// them to the route table.
package browser

import (
	"context"
	"strings"

	"github.com/spec-kit/videogames-portal/internal/domain"
	apperrors "github.com/spec-kit/videogames-portal/pkg/util"
)

// TokenIssuer is what the login view needs from the session layer.
// Both the local issuer and the portal API client satisfy it.
type TokenIssuer interface {
	Issue(ctx context.Context, name string) (domain.IssuedToken, error)
}

// LoginState enumerates the login view's states.
type LoginState int

const (
	LoginIdle LoginState = iota
	LoginSubmitting
	LoginSucceeded
	LoginFailed
)

// loginErrorMessage is the fixed user-facing message for a failed
// issuance. Resubmission stays allowed.
const loginErrorMessage = "Error generating the token. Please try again."

// LoginView collects a name and exchanges it for a session token.
type LoginView struct {
	issuer TokenIssuer

	state LoginState
	token domain.Token
	msg   string
}

// NewLoginView builds the view in the Idle state.
func NewLoginView(issuer TokenIssuer) *LoginView {
	return &LoginView{issuer: issuer}
}

// State returns the current view state.
func (v *LoginView) State() LoginState { return v.state }

// Token returns the token obtained by the last successful submission.
func (v *LoginView) Token() domain.Token { return v.token }

// Message returns the user-facing error message, if any.
func (v *LoginView) Message() string { return v.msg }

// Edit returns the view to Idle after a result, clearing any message.
func (v *LoginView) Edit() {
	v.state = LoginIdle
	v.msg = ""
}

// ValidateName applies the login form check: non-empty and at least
// two characters after trimming.
func ValidateName(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return apperrors.NewValidationError(
			"name is required and must be at least 2 characters",
			map[string]any{"field": "name"},
		)
	}
	return nil
}

// Submit runs the submission transition. A validation failure blocks
// the transition entirely; no issuance call is made and the view stays
// Idle. An issuance failure moves to Failed with the fixed message.
func (v *LoginView) Submit(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	v.state = LoginSubmitting
	v.msg = ""

	issued, err := v.issuer.Issue(ctx, strings.TrimSpace(name))
	if err != nil {
		v.state = LoginFailed
		v.msg = loginErrorMessage
		return err
	}

	v.state = LoginSucceeded
	v.token = issued.Token
	return nil
}
