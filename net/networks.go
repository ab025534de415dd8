package net

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/gertjaap/genesis-go/pow"
)

var ErrUnknownNetwork = errors.New("unknown network")

// Network is a preset of genesis parameters. Loading one reproduces that
// chain's genesis block with the right algorithm.
type Network struct {
	Name      string
	Algorithm pow.Algorithm
	Timestamp string
	// PubKey is hex encoded, uncompressed.
	PubKey string
	Value  int64
	Time   uint32
	Bits   uint32
	Nonce  uint32
	// GenesisHash is the known block hash in display order, used to confirm
	// a run reproduced the chain's genesis block.
	GenesisHash string
}

var networks = map[string]Network{}

func init() {
	for _, params := range []*chaincfg.Params{
		&chaincfg.MainNetParams,
		&chaincfg.TestNet3Params,
		&chaincfg.RegressionNetParams,
	} {
		n := fromChainParams(params)
		networks[n.Name] = n
	}
	networks["bitcoin"] = withName(networks[chaincfg.MainNetParams.Name], "bitcoin")

	networks["litecoin"] = Network{
		Name:        "litecoin",
		Algorithm:   pow.Scrypt,
		Timestamp:   "NY Times 05/Oct/2011 Steve Jobs, Apple’s Visionary, Dies at 56",
		PubKey:      "040184710fa689ad5023690c80f3a49c8f13f8d45b8c857fbcbc8bc4a8e4d3eb4b10f4d4604fa08dce601aaf0f470216fe1b51850b4acf21b179c45070ac7b03a9",
		Value:       50 * 100000000,
		Time:        1317972665,
		Bits:        0x1e0ffff0,
		Nonce:       2084524493,
		GenesisHash: "12a765e31ffd4059bada1e25190f6e98c99d9714d334efa41a195a7e7e04bfe2",
	}
}

func withName(n Network, name string) Network {
	n.Name = name
	return n
}

// fromChainParams reads the preset back out of btcd's genesis block: the
// timestamp is the last push of the coinbase script and the key the only
// push of the output script.
func fromChainParams(params *chaincfg.Params) Network {
	block := params.GenesisBlock
	coinbase := block.Transactions[0]

	pushes, err := txscript.PushedData(coinbase.TxIn[0].SignatureScript)
	if err != nil || len(pushes) == 0 {
		panic(fmt.Sprintf("net: cannot read %s genesis coinbase: %v", params.Name, err))
	}
	keys, err := txscript.PushedData(coinbase.TxOut[0].PkScript)
	if err != nil || len(keys) != 1 {
		panic(fmt.Sprintf("net: cannot read %s genesis output: %v", params.Name, err))
	}

	return Network{
		Name:        params.Name,
		Algorithm:   pow.SHA256,
		Timestamp:   string(pushes[len(pushes)-1]),
		PubKey:      hex.EncodeToString(keys[0]),
		Value:       coinbase.TxOut[0].Value,
		Time:        uint32(block.Header.Timestamp.Unix()),
		Bits:        block.Header.Bits,
		Nonce:       block.Header.Nonce,
		GenesisHash: params.GenesisHash.String(),
	}
}

// Lookup finds a preset by name, ignoring case.
func Lookup(name string) (Network, error) {
	n, ok := networks[strings.ToLower(name)]
	if !ok {
		return Network{}, fmt.Errorf("%w %q: must be one of [%s]", ErrUnknownNetwork, name, strings.Join(Names(), "|"))
	}
	return n, nil
}

func Names() []string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
