package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_IssueVerifyRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	raw, err := tokens.Issue(map[string]any{"user_id": int64(42)})
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Contains(t, claims, "exp")
}

func TestTokens_ExpiredTokenRejected(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	// Issue in the past so the token is already expired, then verify
	// against the real clock.
	tokens.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	raw, err := tokens.Issue(map[string]any{"user_id": int64(1)})
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, ErrTokenRejected)
}

func TestTokens_TamperedSignatureRejected(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	raw, err := tokens.Issue(map[string]any{"user_id": int64(42)})
	require.NoError(t, err)

	// Flip the first character of the signature segment. The final base64url
	// character only carries padding bits, so it is not a reliable target.
	sigStart := strings.LastIndex(raw, ".") + 1
	tampered := []byte(raw)
	if tampered[sigStart] == 'A' {
		tampered[sigStart] = 'B'
	} else {
		tampered[sigStart] = 'A'
	}

	_, err = tokens.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrTokenRejected)
}

func TestTokens_WrongSecretRejected(t *testing.T) {
	issuer := NewTokens("secret-one", time.Hour)
	verifier := NewTokens("secret-two", time.Hour)

	raw, err := issuer.Issue(map[string]any{"user_id": int64(42)})
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	assert.ErrorIs(t, err, ErrTokenRejected)
}

func TestTokens_MalformedTokenRejected(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenRejected)
	}
}

func TestTokens_SameClaimsDifferentInstants(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	base := time.Now()

	tokens.now = func() time.Time { return base }
	first, err := tokens.Issue(map[string]any{"user_id": int64(7)})
	require.NoError(t, err)

	tokens.now = func() time.Time { return base.Add(time.Second) }
	second, err := tokens.Issue(map[string]any{"user_id": int64(7)})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	tokens.now = time.Now
	for _, raw := range []string{first, second} {
		claims, err := tokens.Verify(raw)
		require.NoError(t, err)
		assert.Equal(t, float64(7), claims["user_id"])
	}
}

func TestTokens_IssueDoesNotMutateInput(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	claims := map[string]any{"user_id": int64(42)}
	_, err := tokens.Issue(claims)
	require.NoError(t, err)
	assert.NotContains(t, claims, "exp")
}
