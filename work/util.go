package work

import (
	"math/big"
)

// reverseInto writes src back to front into dst without allocating.
func reverseInto(dst, src *[32]byte) {
	for i := 0; i < 32; i++ {
		dst[i] = src[31-i]
	}
}

// Difficulty expresses target relative to the difficulty-1 target of 0x1d00ffff.
func Difficulty(target *big.Int) float64 {
	if target.Sign() <= 0 {
		return 0
	}
	q := new(big.Float).Quo(new(big.Float).SetInt(diffOneTarget), new(big.Float).SetInt(target))
	d, _ := q.Float64()
	return d
}
