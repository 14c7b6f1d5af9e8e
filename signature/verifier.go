package signature

import "crypto/subtle"

// Verify reports whether the presented token matches the configured secret.
// Comparison is constant time. An empty secret never verifies.
func Verify(secret, presented string) bool {
	if secret == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(presented)) == 1
}
