package domain

type Mode string

const (
	ModeAnonymous     Mode = "anonymous"
	ModeAuthenticated Mode = "authenticated"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeAnonymous, ModeAuthenticated:
		return true
	default:
		return false
	}
}

// Session is the client's belief about whether it is authenticated and as
// whom. Token and DisplayName are either both set or both empty; the mode
// follows from the token.
type Session struct {
	Mode        Mode
	Token       string
	DisplayName string
}

// NewSession normalizes a token/name pair read from storage or a login
// response. A pair with either value missing is treated as no session.
func NewSession(token, displayName string) Session {
	if token == "" || displayName == "" {
		return Session{Mode: ModeAnonymous}
	}

	return Session{
		Mode:        ModeAuthenticated,
		Token:       token,
		DisplayName: displayName,
	}
}

func (s Session) Authenticated() bool {
	return s.Mode == ModeAuthenticated && s.Token != ""
}
