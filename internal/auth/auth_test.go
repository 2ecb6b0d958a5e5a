package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSignup(t *testing.T) {
	testCases := []struct {
		name string
		user string
		pass string
		want error
	}{
		{name: "ok", user: "veeti_01", pass: "hirsipuu", want: nil},
		{name: "short username", user: "ab", pass: "hirsipuu", want: ErrUsernameRule},
		{name: "long username", user: strings.Repeat("a", 25), pass: "hirsipuu", want: ErrUsernameRule},
		{name: "bad char", user: "vee ti", pass: "hirsipuu", want: ErrUsernameRule},
		{name: "short password", user: "veeti", pass: "short", want: ErrPasswordRule},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSignup(tc.user, tc.pass)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	h, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPassword(h, "correct horse"))
	assert.False(t, CheckPassword(h, "wrong horse"))
}

func TestSignAndParse(t *testing.T) {
	s := Signer{Secret: []byte("test-secret"), TTL: time.Hour}
	tok, exp, err := s.Sign("id-1", "veeti")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	c, err := s.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "id-1", c.UserID)
	assert.Equal(t, "veeti", c.Username)
}

func TestParseRejects(t *testing.T) {
	s := Signer{Secret: []byte("test-secret"), TTL: time.Hour}

	other := Signer{Secret: []byte("other"), TTL: time.Hour}
	forged, _, err := other.Sign("id-1", "veeti")
	require.NoError(t, err)

	expired, _, err := Signer{Secret: s.Secret, TTL: -time.Hour}.Sign("id-1", "veeti")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "id-1", Username: "veeti"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tok := range map[string]string{"forged": forged, "expired": expired, "alg none": none, "garbage": "x.y.z"} {
		_, err := s.Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestBearerOrCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, BearerOrCookie(r, "tok"))

	r.AddCookie(&http.Cookie{Name: "tok", Value: "from-cookie"})
	assert.Equal(t, "from-cookie", BearerOrCookie(r, "tok"))

	r.Header.Set("Authorization", "Bearer from-header")
	assert.Equal(t, "from-header", BearerOrCookie(r, "tok"))
}
