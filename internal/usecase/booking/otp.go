package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// 4-digit numeric code, leading zeros kept.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}
