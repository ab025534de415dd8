package work

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// PubKeyLen is the size of an uncompressed secp256k1 public key.
	PubKeyLen = 65

	// Pushes up to this size are prefixed with their length only. Genesis
	// tools have always treated 76 as a direct push, so we keep that.
	maxDirectPush = 76
	maxPushData1  = 0xff
	// The input script length must fit a single compact-size byte.
	maxInputScriptLen = 0xfc

	coinbaseTxVersion = 1
	// Fixed-width part of the serialized coinbase: everything except the
	// input script bytes.
	coinbaseFixedSize = 127
)

var (
	ErrScriptTooLarge   = errors.New("input script too large")
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// bitsPrefix pushes 486604799 (0x1d00ffff) followed by the number 4, the same
// prefix Bitcoin's genesis coinbase carries whatever bits the block uses.
var bitsPrefix = []byte{0xff, 0xff, 0x00, 0x1d}

// CreateInputScript builds the coinbase script embedding the timestamp text.
func CreateInputScript(timestamp []byte) ([]byte, error) {
	script, err := NewScriptBuilder().
		AddData(bitsPrefix).
		AddData([]byte{0x04}).
		AddData(timestamp).
		Script()
	if err != nil {
		return nil, err
	}
	if len(script) > maxInputScriptLen {
		return nil, fmt.Errorf("%w: script is %d bytes, the length byte holds at most %d",
			ErrScriptTooLarge, len(script), maxInputScriptLen)
	}
	return script, nil
}

// CreateOutputScript builds a pay-to-pubkey script: <pubkey> OP_CHECKSIG.
func CreateOutputScript(pubKey []byte) ([]byte, error) {
	if len(pubKey) != PubKeyLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, PubKeyLen, len(pubKey))
	}
	return NewScriptBuilder().AddData(pubKey).AddOp(txscript.OP_CHECKSIG).Script()
}

// CreateCoinbaseTx constructs the single transaction of the genesis block.
func CreateCoinbaseTx(timestamp, pubKey []byte, value int64) (*wire.MsgTx, error) {
	inputScript, err := CreateInputScript(timestamp)
	if err != nil {
		return nil, err
	}
	outputScript, err := CreateOutputScript(pubKey)
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(coinbaseTxVersion)

	// Null previous output; NewTxIn sets the sequence to 0xffffffff.
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	tx.AddTxIn(wire.NewTxIn(prevOut, inputScript, nil))
	tx.AddTxOut(wire.NewTxOut(value, outputScript))
	return tx, nil
}

// SerializeTx returns the legacy (witness-free) encoding hashed into the merkle root.
func SerializeTx(tx *wire.MsgTx) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSizeStripped())
	if err := tx.SerializeNoWitness(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MerkleRoot of a block holding only tx is its double-SHA256, in internal byte order.
func MerkleRoot(txBytes []byte) chainhash.Hash {
	return chainhash.DoubleHashH(txBytes)
}

// ScriptBuilder supports the two push forms a genesis coinbase needs.
type ScriptBuilder struct {
	script []byte
	err    error
}

func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{}
}

func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	lenData := len(data)
	switch {
	case lenData <= maxDirectPush:
		b.script = append(b.script, byte(lenData))
	case lenData <= maxPushData1:
		b.script = append(b.script, txscript.OP_PUSHDATA1, byte(lenData))
	default:
		b.err = fmt.Errorf("%w: cannot push %d bytes, at most %d are supported",
			ErrScriptTooLarge, lenData, maxPushData1)
		return b
	}
	b.script = append(b.script, data...)
	return b
}

func (b *ScriptBuilder) AddOp(op byte) *ScriptBuilder {
	if b.err == nil {
		b.script = append(b.script, op)
	}
	return b
}

func (b *ScriptBuilder) Script() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.script, nil
}
