package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/homecraft/homecraft-cli/internal/model"
)

// DecodeExpiry extracts the exp claim from a bearer token and returns
// it as an absolute epoch-millisecond timestamp. The signature is not
// verified; the server is the authority on token validity, the client
// only schedules its own forced logout. A missing or unparseable claim
// yields model.ErrMalformedToken.
func DecodeExpiry(tokenString string) (int64, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrMalformedToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrMalformedToken, err)
	}
	if exp == nil {
		return 0, model.ErrMalformedToken
	}

	return exp.UnixMilli(), nil
}
