package work

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"math/big"
)

var ErrNonceSpaceExhausted = errors.New("nonce space exhausted")

// Result is the first header whose hash fell below the target.
type Result struct {
	// Hash is the winning digest reversed, the order used for display and
	// for comparison against the target.
	Hash   [32]byte
	Nonce  uint32
	Header Header
	// Hashes counts the headers hashed by this search.
	Hashes uint64
}

func (r *Result) HashHex() string {
	return hex.EncodeToString(r.Hash[:])
}

type SearchOption func(*Search)

// WithObserver attaches an observer such as a HashrateMonitor.
func WithObserver(o NonceObserver) SearchOption {
	return func(s *Search) {
		s.observer = o
	}
}

// Search owns the header buffer for the duration of a nonce search.
type Search struct {
	header     Header
	startNonce uint32
	nonce      uint32
	target     [32]byte
	// unbounded is set for targets wider than 256 bits, which every hash meets.
	unbounded bool
	hasher    Hasher
	observer  NonceObserver
}

// NewSearch starts at the nonce already stored in header. target must not be negative.
func NewSearch(header Header, target *big.Int, hasher Hasher, opts ...SearchOption) *Search {
	s := &Search{
		header: header,
		hasher: hasher,
	}
	s.startNonce = s.header.Nonce()
	s.nonce = s.startNonce
	if target.BitLen() > 256 {
		s.unbounded = true
	} else {
		target.FillBytes(s.target[:])
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Search) meetsTarget(digest *[32]byte) bool {
	return s.unbounded || bytes.Compare(digest[:], s.target[:]) < 0
}

// Run hashes the header, nonce after nonce, until a digest is below the
// target. The nonce does not wrap: failing at 0xffffffff ends the search with
// ErrNonceSpaceExhausted.
func (s *Search) Run() (*Result, error) {
	var (
		hashes uint64
		digest [32]byte
	)
	for {
		raw, err := s.hasher.Hash(s.header[:])
		if err != nil {
			return nil, fmt.Errorf("hashing header with nonce %d: %w", s.nonce, err)
		}
		hashes++
		reverseInto(&digest, &raw)

		if s.observer != nil {
			s.observer.Observe(s.nonce)
		}

		if s.meetsTarget(&digest) {
			return &Result{
				Hash:   digest,
				Nonce:  s.nonce,
				Header: s.header,
				Hashes: hashes,
			}, nil
		}

		if s.nonce == math.MaxUint32 {
			return nil, fmt.Errorf("%w: no hash below target for nonces %d to %d",
				ErrNonceSpaceExhausted, s.startNonce, s.nonce)
		}
		s.nonce++
		s.header.SetNonce(s.nonce)
	}
}
