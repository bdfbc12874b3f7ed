package jwt

import (
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Codec encodes and decodes claim maps to and from compact signed token
// strings. It guarantees cryptographic integrity only; claim-level
// validation belongs to the payload validator.
type Codec interface {
	// Encode signs the claim map and returns the compact token string.
	Encode(claims map[string]any) (string, error)
	// Decode verifies the signature and returns the claim map.
	// Fails with ErrMalformedToken, ErrSignatureInvalid or
	// ErrUnsupportedAlgorithm.
	Decode(token string) (map[string]any, error)
}

// New builds a Codec for the configured algorithm.
func New(cfg Config) (Codec, error) {
	c := &codecImpl{algorithm: cfg.Algorithm}

	switch cfg.Algorithm {
	case AlgorithmHS256:
		if cfg.Secret == "" {
			return nil, ErrSecretRequired
		}
		c.secret = []byte(cfg.Secret)
	case AlgorithmRS256:
		if len(cfg.PrivateKeyPEM) == 0 {
			return nil, ErrPrivateKeyRequired
		}
		if len(cfg.PublicKeyPEM) == 0 {
			return nil, ErrPublicKeyRequired
		}

		priv, err := jwtlib.ParseRSAPrivateKeyFromPEM(cfg.PrivateKeyPEM)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA private key: %w", err)
		}

		pub, err := jwtlib.ParseRSAPublicKeyFromPEM(cfg.PublicKeyPEM)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}

		c.priv, c.pub = priv, pub
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, cfg.Algorithm)
	}

	return c, nil
}
