// Package pow resolves a proof-of-work algorithm name into a Hasher once, at
// configuration time, so the search loop only ever calls a fixed function.
package pow

import (
	"errors"
	"fmt"
	"strings"
)

type Algorithm string

const (
	SHA256     Algorithm = "SHA256"
	Scrypt     Algorithm = "scrypt"
	QuarkHash  Algorithm = "quark-hash"
	Argon2Hash Algorithm = "argon2-hash"
	X11        Algorithm = "X11"
	X13        Algorithm = "X13"
	X15        Algorithm = "X15"
	XevanHash  Algorithm = "xevan_hash"
	Verthash   Algorithm = "verthash"
)

// Algorithms lists every supported algorithm in the order they are shown to users.
var Algorithms = []Algorithm{SHA256, QuarkHash, Argon2Hash, Scrypt, X11, X13, X15, XevanHash, Verthash}

var (
	ErrUnsupportedAlgorithm  = errors.New("unsupported algorithm")
	ErrMissingImplementation = errors.New("missing algorithm implementation")
)

const (
	sha256Bits  uint32 = 0x1d00ffff
	altcoinBits uint32 = 0x1e0ffff0
)

// ParseAlgorithm accepts exactly the names listed in Algorithms.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of [%s]", ErrUnsupportedAlgorithm, name, algorithmList())
}

// DefaultBits is the compact target associated with a difficulty of 1 for alg.
func DefaultBits(alg Algorithm) uint32 {
	if alg == SHA256 {
		return sha256Bits
	}
	return altcoinBits
}

func (a Algorithm) String() string {
	return string(a)
}

func algorithmList() string {
	names := make([]string, len(Algorithms))
	for i, a := range Algorithms {
		names[i] = string(a)
	}
	return strings.Join(names, "|")
}
