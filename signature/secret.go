// Package signature provides shared-secret generation and verification for
// inbound webhooks.
//
// Paperless webhook actions do not sign their payloads; the mechanism they do
// support is a static header on every delivery. Docuhook generates a random
// secret, attaches it to the synthesized webhook action as the
// X-Docuhook-Token header, and backend adapters verify it in constant time
// before dispatching.
package signature

import (
	"crypto/rand"
	"encoding/hex"
)

// TokenHeader is the HTTP header carrying the shared webhook secret.
const TokenHeader = "X-Docuhook-Token"

// GenerateSecret creates a cryptographically random shared secret.
// Format: "whsec_" + 32 bytes hex = 70 characters total.
func GenerateSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("docuhook: failed to generate random secret: " + err.Error())
	}
	return "whsec_" + hex.EncodeToString(b)
}
