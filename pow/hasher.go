package pow

import (
	"fmt"
	"sync"
)

// HashFunc computes a raw 32-byte proof-of-work digest of an 80-byte header.
// The digest is in the algorithm's native byte order; callers reverse it
// before reading it as a big-endian number.
type HashFunc func(header []byte) ([32]byte, error)

// Hasher is a resolved proof-of-work algorithm.
type Hasher interface {
	Algorithm() Algorithm
	Hash(header []byte) ([32]byte, error)
	Close() error
}

// Options carries what individual algorithms need to initialise.
type Options struct {
	// VerthashDataFile is the path of verthash.dat. When empty the
	// ~/.vertcoin/verthash.dat default is tried.
	VerthashDataFile string
	// VerthashInRAM loads the whole data file into memory.
	VerthashInRAM bool
}

var (
	registryMu sync.RWMutex
	registry   = map[Algorithm]HashFunc{}
)

// Register installs the implementation of an algorithm that is not built in
// (quark-hash, argon2-hash, X11, X13, X15, xevan_hash). It panics when alg is
// not one of the supported algorithms, like database/sql.Register does for
// bad drivers.
func Register(alg Algorithm, fn HashFunc) {
	if _, err := ParseAlgorithm(string(alg)); err != nil {
		panic(err)
	}
	if fn == nil {
		panic(fmt.Sprintf("pow: Register %s with nil HashFunc", alg))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[alg] = fn
}

// Unregister removes an implementation installed with Register.
func Unregister(alg Algorithm) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, alg)
}

func registered(alg Algorithm) (HashFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[alg]
	return fn, ok
}

// Resolve turns alg into a Hasher. Any missing dependency is reported here,
// before a single header is hashed.
func Resolve(alg Algorithm, opts Options) (Hasher, error) {
	if _, err := ParseAlgorithm(string(alg)); err != nil {
		return nil, err
	}

	// A registered implementation overrides the built-in one.
	if fn, ok := registered(alg); ok {
		return &funcHasher{alg: alg, fn: fn}, nil
	}

	switch alg {
	case SHA256:
		return &funcHasher{alg: alg, fn: DoubleSHA256}, nil
	case Scrypt:
		return &funcHasher{alg: alg, fn: ScryptHash}, nil
	case Verthash:
		return newVerthasher(opts)
	}
	return nil, fmt.Errorf("%w: cannot run %s algorithm, no implementation registered", ErrMissingImplementation, alg)
}

type funcHasher struct {
	alg Algorithm
	fn  HashFunc
}

func (h *funcHasher) Algorithm() Algorithm {
	return h.alg
}

func (h *funcHasher) Hash(header []byte) ([32]byte, error) {
	return h.fn(header)
}

func (h *funcHasher) Close() error {
	return nil
}
