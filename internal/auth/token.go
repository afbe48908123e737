package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenRejected is the only error Verify returns. Malformed tokens, bad
// signatures, wrong signing methods and expired tokens all collapse into it
// so callers cannot distinguish the failure modes.
var ErrTokenRejected = errors.New("token rejected")

// Tokens issues and verifies HS256 bearer tokens with an absolute expiry.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs the claim set with an exp claim set to now+ttl. The input map
// is not modified.
func (t *Tokens) Issue(claims map[string]any) (string, error) {
	merged := jwt.MapClaims{}
	for k, v := range claims {
		merged[k] = v
	}
	merged["exp"] = t.now().Add(t.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, merged)
	return token.SignedString(t.secret)
}

// Verify returns the embedded claims (including exp) or ErrTokenRejected.
func (t *Tokens) Verify(raw string) (map[string]any, error) {
	token, err := jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenRejected
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return t.now() }))
	if err != nil || !token.Valid {
		return nil, ErrTokenRejected
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenRejected
	}
	return claims, nil
}
