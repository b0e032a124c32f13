package core

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims Claims) string {
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return ss
}

func Test_NewSession(t *testing.T) {
	now := time.Date(2021, 3, 8, 10, 0, 0, 0, time.UTC)
	token := signToken(t, Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "t-42",
			ExpiresAt: now.Add(time.Hour).Unix(),
		},
		Name:      "Jane Teacher",
		IsTeacher: true,
	})

	sess, err := NewSession(token)
	require.NoError(t, err)
	assert.Equal(t, "t-42", sess.UserID())
	assert.Equal(t, "Jane Teacher", sess.Claims.Name)
	assert.True(t, sess.Claims.IsTeacher)

	assert.True(t, sess.Valid(now))
	assert.False(t, sess.Valid(now.Add(2*time.Hour)))
}

func Test_NewSession_malformed(t *testing.T) {
	_, err := NewSession("not-a-jwt")
	assert.Error(t, err)
}

func Test_Session_Valid(t *testing.T) {
	now := time.Now()

	var nilSess *Session
	assert.False(t, nilSess.Valid(now))
	assert.False(t, (&Session{}).Valid(now))

	// no expiry claim means no client-side cutoff
	sess := &Session{Token: "tok"}
	assert.True(t, sess.Valid(now))
}
