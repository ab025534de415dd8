package work

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
)

var ErrInvalidDifficultyEncoding = errors.New("invalid difficulty encoding")

const minCompactExponent = 3

var diffOneTarget = new(big.Int).Lsh(big.NewInt(0xffff), 8*(0x1d-minCompactExponent))

// CompactToTarget expands compact bits into the full target:
// (bits & 0xffffff) * 2^(8*((bits>>24)-3)). The coefficient is read as an
// unsigned 24-bit value. Exponents below 3 would need a right shift and are
// rejected.
func CompactToTarget(bits uint32) (*big.Int, error) {
	exponent := bits >> 24
	if exponent < minCompactExponent {
		return nil, fmt.Errorf("%w: bits 0x%08x has exponent %d, must be at least %d",
			ErrInvalidDifficultyEncoding, bits, exponent, minCompactExponent)
	}
	coefficient := big.NewInt(int64(bits & 0x00ffffff))
	return coefficient.Lsh(coefficient, uint(8*(exponent-minCompactExponent))), nil
}

// IsCanonicalCompact reports whether bits is the encoding a node would produce
// for its own target.
func IsCanonicalCompact(bits uint32) bool {
	target, err := CompactToTarget(bits)
	if err != nil {
		return false
	}
	return blockchain.BigToCompact(target) == bits
}
