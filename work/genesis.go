package work

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

var errVerification = errors.New("genesis hash failed verification")

// Params fully determine a genesis block apart from the nonce search.
type Params struct {
	// Timestamp is the text embedded in the coinbase input script.
	Timestamp string
	PubKey    []byte
	// Value is the coinbase reward in base units.
	Value int64
	Time  uint32
	Bits  uint32
	// Nonce is where the search starts.
	Nonce uint32
}

// Genesis holds everything built before the search starts.
type Genesis struct {
	Params     Params
	Tx         *wire.MsgTx
	TxBytes    []byte
	MerkleRoot chainhash.Hash
	Header     Header
	Target     *big.Int
}

// Outcome is a mined genesis block.
type Outcome struct {
	Tx          *wire.MsgTx
	Transaction []byte
	Header      Header
	// MerkleRoot and Hash are hex in display (reversed) byte order.
	MerkleRoot string
	Hash       string
	Nonce      uint32
	Hashes     uint64
}

// Prepare builds the coinbase transaction, the header and the target. Every
// configuration error is reported here.
func Prepare(p Params) (*Genesis, error) {
	target, err := CompactToTarget(p.Bits)
	if err != nil {
		return nil, err
	}
	tx, err := CreateCoinbaseTx([]byte(p.Timestamp), p.PubKey, p.Value)
	if err != nil {
		return nil, err
	}
	txBytes, err := SerializeTx(tx)
	if err != nil {
		return nil, fmt.Errorf("serialize coinbase: %w", err)
	}
	merkleRoot := MerkleRoot(txBytes)

	return &Genesis{
		Params:     p,
		Tx:         tx,
		TxBytes:    txBytes,
		MerkleRoot: merkleRoot,
		Header:     NewHeader(merkleRoot, p.Time, p.Bits, p.Nonce),
		Target:     target,
	}, nil
}

// Mine searches for the nonce and checks the winning header once more
// before returning it.
func (g *Genesis) Mine(hasher Hasher, opts ...SearchOption) (*Outcome, error) {
	res, err := NewSearch(g.Header, g.Target, hasher, opts...).Run()
	if err != nil {
		return nil, err
	}
	if err := verify(res, g.Target, hasher); err != nil {
		return nil, err
	}
	return &Outcome{
		Tx:          g.Tx,
		Transaction: g.TxBytes,
		Header:      res.Header,
		MerkleRoot:  g.MerkleRoot.String(),
		Hash:        res.HashHex(),
		Nonce:       res.Nonce,
		Hashes:      res.Hashes,
	}, nil
}

func verify(res *Result, target *big.Int, hasher Hasher) error {
	raw, err := hasher.Hash(res.Header[:])
	if err != nil {
		return fmt.Errorf("%w: %v", errVerification, err)
	}
	var digest [32]byte
	reverseInto(&digest, &raw)
	if digest != res.Hash {
		return fmt.Errorf("%w: nonce %d rehashed to %x, search saw %x", errVerification, res.Nonce, digest, res.Hash)
	}
	if target.BitLen() <= 256 && new(big.Int).SetBytes(digest[:]).Cmp(target) >= 0 {
		return fmt.Errorf("%w: %x is not below the target", errVerification, digest)
	}
	return nil
}

// RunGenesisSearch builds and mines a genesis block in one call.
func RunGenesisSearch(p Params, hasher Hasher, opts ...SearchOption) (*Outcome, error) {
	g, err := Prepare(p)
	if err != nil {
		return nil, err
	}
	return g.Mine(hasher, opts...)
}

func (o *Outcome) HeaderHex() string {
	return hex.EncodeToString(o.Header[:])
}

func (o *Outcome) TransactionHex() string {
	return hex.EncodeToString(o.Transaction)
}

// Block assembles the mined header and the coinbase into a full block.
func (o *Outcome) Block() (*wire.MsgBlock, error) {
	bh, err := o.Header.BlockHeader()
	if err != nil {
		return nil, err
	}
	block := wire.NewMsgBlock(bh)
	if err := block.AddTransaction(o.Tx); err != nil {
		return nil, err
	}
	return block, nil
}
