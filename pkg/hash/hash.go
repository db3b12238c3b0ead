package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Password returns the hex-encoded SHA-256 digest of the plaintext.
// Deterministic and unsalted: the token derivation below depends on
// stable output. Known limitation, not a substitute for a real KDF.
func Password(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// DeriveToken builds the placeholder bearer credential from the user's
// email and store id. Nothing verifies these tokens on later requests;
// there is no expiry and no revocation.
func DeriveToken(email, userID string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s", email, userID)))
	return hex.EncodeToString(sum[:])
}

// referenceLen is the number of hex characters kept from the digest.
const referenceLen = 12

// PaymentReference derives the short transaction reference from the
// paying user, the purchased service code and the payment time.
func PaymentReference(userID, serviceCode string, at time.Time) string {
	seed := fmt.Sprintf("%s:%s:%s", userID, serviceCode, at.UTC().Format(time.RFC3339Nano))
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:referenceLen]
}
