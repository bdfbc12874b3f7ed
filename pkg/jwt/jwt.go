package jwt

import (
	"errors"
	"fmt"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Encode signs the claim map with the configured algorithm and key.
func (c *codecImpl) Encode(claims map[string]any) (string, error) {
	token := jwtlib.NewWithClaims(c.signingMethod(), jwtlib.MapClaims(claims))

	signed, err := token.SignedString(c.signingKey())
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Decode verifies the token signature and returns the raw claim map.
// No claim-level validation happens here.
func (c *codecImpl) Decode(token string) (map[string]any, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, ErrMalformedToken
	}
	for _, segment := range segments {
		if segment == "" {
			return nil, ErrMalformedToken
		}
	}

	parser := jwtlib.NewParser(jwtlib.WithoutClaimsValidation())

	parsed, err := parser.Parse(token, c.verifyKey)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedAlgorithm):
			return nil, ErrUnsupportedAlgorithm
		case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		case errors.Is(err, jwtlib.ErrTokenMalformed):
			return nil, ErrMalformedToken
		default:
			return nil, fmt.Errorf("failed to parse token: %w", err)
		}
	}

	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, ErrMalformedToken
	}

	return map[string]any(mapClaims), nil
}

// verifyKey is the parser keyfunc. The algorithm check lives here so a
// token signed with a different algorithm surfaces as
// ErrUnsupportedAlgorithm rather than a bare signature failure.
func (c *codecImpl) verifyKey(token *jwtlib.Token) (any, error) {
	if token.Method.Alg() != c.algorithm {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, token.Method.Alg())
	}

	if c.algorithm == AlgorithmRS256 {
		return c.pub, nil
	}
	return c.secret, nil
}

func (c *codecImpl) signingMethod() jwtlib.SigningMethod {
	if c.algorithm == AlgorithmRS256 {
		return jwtlib.SigningMethodRS256
	}
	return jwtlib.SigningMethodHS256
}

func (c *codecImpl) signingKey() any {
	if c.algorithm == AlgorithmRS256 {
		return c.priv
	}
	return c.secret
}
