package application

import (
	"context"
	"fmt"

	"github.com/bnema/biketaxi-cli/internal/domain"
	"github.com/bnema/biketaxi-cli/internal/ports"
)

type SubMode string

const (
	SubModeLogin    SubMode = "login"
	SubModeRegister SubMode = "register"
)

// RegisterConfirmation is reported after a successful registration; the
// flow deliberately does not log the user in.
const RegisterConfirmation = "Registration successful! Please login."

// AuthForm drives the login/register exchanges while the session is
// anonymous. Its sub-mode is independent of session state and changes only
// on explicit toggle or a completed registration. It carries the single
// error slot for the auth surface; every submit attempt clears the slot
// before resolving.
type AuthForm struct {
	sessions *SessionService
	ride     ports.RideService

	subMode SubMode
	errMsg  string
}

func NewAuthForm(sessions *SessionService, ride ports.RideService) *AuthForm {
	return &AuthForm{
		sessions: sessions,
		ride:     ride,
		subMode:  SubModeLogin,
	}
}

// Toggle flips between the login and register sub-modes and clears any
// pending error. In-progress field values belong to the caller and are
// discarded with the attempt.
func (f *AuthForm) Toggle() {
	if f.subMode == SubModeLogin {
		f.subMode = SubModeRegister
	} else {
		f.subMode = SubModeLogin
	}
	f.errMsg = ""
}

func (f *AuthForm) SubMode() SubMode {
	return f.subMode
}

// Err is the current error slot. Empty means the error surface is hidden.
func (f *AuthForm) Err() string {
	return f.errMsg
}

// SubmitLogin exchanges credentials for a token and hands the result to the
// session service. On failure the session is untouched and the server's
// message lands in the error slot.
func (f *AuthForm) SubmitLogin(ctx context.Context, email, password string) (string, error) {
	f.errMsg = ""

	token, displayName, err := f.ride.Login(ctx, email, password)
	if err != nil {
		f.errMsg = err.Error()
		return "", err
	}

	if err := f.sessions.CompleteLogin(ctx, token, displayName); err != nil {
		f.errMsg = err.Error()
		return "", err
	}

	return displayName, nil
}

// SubmitRegister validates locally, then registers. Validation failures
// never issue a request. Success does not authenticate: the form returns to
// the login sub-mode and the caller reports RegisterConfirmation.
func (f *AuthForm) SubmitRegister(ctx context.Context, name, email, password string) error {
	f.errMsg = ""
	f.subMode = SubModeRegister

	if err := domain.ValidateRegistration(name, email, password); err != nil {
		f.errMsg = err.Error()
		return fmt.Errorf("validate registration: %w", err)
	}

	if err := f.ride.Register(ctx, name, email, password); err != nil {
		f.errMsg = err.Error()
		return err
	}

	f.subMode = SubModeLogin
	return nil
}
