package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoIdentity is returned when a token carries no usable subject.
var ErrNoIdentity = errors.New("token has no identity claim")

// Identity returns the subject the backend put into token. The signature
// is not verified: the client only uses this for display, and the backend
// remains the authority on whether the token is accepted.
func Identity(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}

	switch sub := claims["sub"].(type) {
	case string:
		if sub != "" {
			return sub, nil
		}
	case float64:
		return fmt.Sprintf("%.0f", sub), nil
	}
	// older flask-jwt tokens carry the subject under "identity"
	if id, ok := claims["identity"].(string); ok && id != "" {
		return id, nil
	}
	return "", ErrNoIdentity
}
