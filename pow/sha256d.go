package pow

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// DoubleSHA256 is Bitcoin's header hash.
func DoubleSHA256(header []byte) ([32]byte, error) {
	return chainhash.DoubleHashH(header), nil
}
