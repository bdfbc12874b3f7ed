package jwt

import "crypto/rsa"

// Algorithm identifiers accepted by New.
const (
	AlgorithmHS256 = "HS256"
	AlgorithmRS256 = "RS256"
)

// Config holds the signing configuration for the codec.
// Secret is used for HS256; the PEM key pair for RS256.
type Config struct {
	Algorithm     string
	Secret        string
	PrivateKeyPEM []byte
	PublicKeyPEM  []byte
}

type codecImpl struct {
	algorithm string
	secret    []byte
	priv      *rsa.PrivateKey
	pub       *rsa.PublicKey
}
