package work

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	bitcoinTimestamp = "The Times 03/Jan/2009 Chancellor on brink of second bailout for banks"
	bitcoinPubKey    = "04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5f"
	bitcoinValue     = 50 * 100000000

	litecoinTimestamp = "NY Times 05/Oct/2011 Steve Jobs, Apple’s Visionary, Dies at 56"
	litecoinPubKey    = "040184710fa689ad5023690c80f3a49c8f13f8d45b8c857fbcbc8bc4a8e4d3eb4b10f4d4604fa08dce601aaf0f470216fe1b51850b4acf21b179c45070ac7b03a9"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func testPubKey() []byte {
	key := make([]byte, PubKeyLen)
	key[0] = 0x04
	for i := 1; i < len(key); i++ {
		key[i] = byte(i)
	}
	return key
}
