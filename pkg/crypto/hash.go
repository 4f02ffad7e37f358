package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashAddress produces the one-way display hash of a postal address.
// The hash is content-derived and deterministic: the same street, city,
// postal code and country always produce the same digest. The raw address
// is never recoverable from it.
func HashAddress(street, city, postalCode, country string) string {
	addressString := fmt.Sprintf("%s %s %s %s", street, city, postalCode, country)
	sum := sha256.Sum256([]byte(addressString))
	return hex.EncodeToString(sum[:])
}
