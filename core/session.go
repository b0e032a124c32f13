package core

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

var errMalformedToken = errors.New("malformed access token")

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Name      string `json:"name,omitempty"`
	IsTeacher bool   `json:"is_teacher,omitempty"`
	IsAdmin   bool   `json:"is_admin,omitempty"`
}

// Session is the explicit authentication context handed to the API and
// realtime clients. It replaces ad hoc reads of ambient token storage so
// that clients can be constructed with an injected fake in tests.
type Session struct {
	Token  string
	Claims Claims
}

// NewSession parses the claims out of an issued token without verifying the
// signature; verification is the server's job, the client only needs the
// subject and expiry for display and refresh decisions.
func NewSession(token string) (*Session, error) {
	sess := &Session{Token: token}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(token, &sess.Claims); err != nil {
		return nil, errors.Wrap(errMalformedToken, err.Error())
	}
	return sess, nil
}

// UserID returns the token subject.
func (s *Session) UserID() string {
	return s.Claims.Subject
}

// Valid reports whether the session token has not yet expired at `now`.
// A token without an expiry claim is treated as valid.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.Token == "" {
		return false
	}
	if s.Claims.ExpiresAt == 0 {
		return true
	}
	return now.Unix() < s.Claims.ExpiresAt
}
