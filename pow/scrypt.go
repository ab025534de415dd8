package pow

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Litecoin-style scrypt parameters; the header is also the salt.
const (
	scryptN      = 1024
	scryptR      = 1
	scryptP      = 1
	scryptKeyLen = 32
)

// ScryptHash computes scrypt(header, header, 1024, 1, 1, 32).
func ScryptHash(header []byte) ([32]byte, error) {
	var out [32]byte
	key, err := scrypt.Key(header, header, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return out, fmt.Errorf("scrypt: %w", err)
	}
	copy(out[:], key)
	return out, nil
}
