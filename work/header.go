package work

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	HeaderSize = 80

	genesisBlockVersion = 1
	nonceOffset         = 76
)

// Header is a serialized block header. Once built only the nonce, its last
// four bytes, is ever rewritten.
type Header [HeaderSize]byte

// NewHeader lays out a genesis header: version 1, an all-zero previous block
// hash, the merkle root in internal byte order, then time, bits and nonce,
// all little-endian.
func NewHeader(merkleRoot chainhash.Hash, timestamp, bits, nonce uint32) Header {
	bh := wire.NewBlockHeader(genesisBlockVersion, &chainhash.Hash{}, &merkleRoot, bits, nonce)
	bh.Timestamp = time.Unix(int64(timestamp), 0)

	var buf bytes.Buffer
	buf.Grow(HeaderSize)
	// Writes to a bytes.Buffer do not fail.
	_ = bh.Serialize(&buf)

	var h Header
	copy(h[:], buf.Bytes())
	return h
}

// SetNonce overwrites the nonce field in place.
func (h *Header) SetNonce(nonce uint32) {
	binary.LittleEndian.PutUint32(h[nonceOffset:], nonce)
}

func (h *Header) Nonce() uint32 {
	return binary.LittleEndian.Uint32(h[nonceOffset:])
}

// BlockHeader decodes h into btcd's header type.
func (h *Header) BlockHeader() (*wire.BlockHeader, error) {
	var bh wire.BlockHeader
	if err := bh.Deserialize(bytes.NewReader(h[:])); err != nil {
		return nil, err
	}
	return &bh, nil
}
