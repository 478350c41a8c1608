package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("test-secret-0123456789"), time.Hour)
	accountID := uuid.New()

	tok, err := tm.Issue(accountID, "ann@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := tm.Validate(tok)
	require.NoError(t, err)

	gotID, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, accountID, gotID)
	assert.Equal(t, "ann@x.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateExpired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("test-secret-0123456789"), -time.Second)
	tok, err := tm.Issue(uuid.New(), "ann@x.com")
	require.NoError(t, err)

	_, err = tm.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// A token whose expiry is the current instant is already invalid: the
// validity window is [issuedAt, expiresAt).
func TestValidateExpiryBoundary(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("test-secret-0123456789"), 0)
	tok, err := tm.Issue(uuid.New(), "ann@x.com")
	require.NoError(t, err)

	_, err = tm.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager([]byte("right-secret-0123456"), time.Hour)
	tok, err := issuer.Issue(uuid.New(), "ann@x.com")
	require.NoError(t, err)

	other := NewTokenManager([]byte("wrong-secret-0123456"), time.Hour)
	_, err = other.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateMalformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("test-secret-0123456789"), time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := tm.Validate(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestValidateTampered(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager([]byte("test-secret-0123456789"), time.Hour)
	tok, err := tm.Issue(uuid.New(), "ann@x.com")
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = tm.Validate(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
