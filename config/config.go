package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/gertjaap/genesis-go/logging"
	chainnet "github.com/gertjaap/genesis-go/net"
	"github.com/gertjaap/genesis-go/pow"
	"github.com/gertjaap/genesis-go/work"
)

const (
	DefaultTimestamp = "14/Apr/2014 No chowder for you, cause clams have feelings too"
	DefaultNonce     = 20542300
	DefaultAlgorithm = pow.Scrypt
	DefaultPubKey    = "0486bce1bac0d543f104cbff2bd23680056a3b9ea05e1137d2ff90eeb5e08472eb500322593a2cb06fbf8297d7beb6cd30cb90f98153b5b7cce1493749e41e0284"
	DefaultLogLevel  = "info"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Bits is a compact difficulty. It accepts 0x-prefixed hex or decimal.
type Bits uint32

func ParseBits(s string) (Bits, error) {
	s = strings.TrimSpace(s)
	var (
		v   uint64
		err error
	)
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err = strconv.ParseUint(rest, 16, 32)
	} else {
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("bits %q: %w", s, err)
	}
	return Bits(v), nil
}

func (b *Bits) UnmarshalFlag(value string) error {
	v, err := ParseBits(value)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b Bits) MarshalFlag() (string, error) {
	return b.String(), nil
}

func (b *Bits) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseBits(node.Value)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b Bits) String() string {
	return fmt.Sprintf("0x%08x", uint32(b))
}

// Config holds one genesis run. Defaults are layered under the network
// preset, the YAML file and finally the command line.
type Config struct {
	ConfigFile string `yaml:"-" short:"c" long:"config" env:"GENESIS_CONFIG" description:"YAML file with genesis parameters"`
	Network    string `yaml:"network" long:"network" env:"GENESIS_NETWORK" description:"start from a known chain's genesis parameters"`

	Time      uint32 `yaml:"time" short:"t" long:"time" env:"GENESIS_TIME" description:"the (unix) time when the genesis block is created"`
	Timestamp string `yaml:"timestamp" short:"z" long:"timestamp" env:"GENESIS_TIMESTAMP" description:"the pszTimestamp found in the coinbase of the genesis block"`
	Nonce     uint32 `yaml:"nonce" short:"n" long:"nonce" env:"GENESIS_NONCE" description:"the first value of the nonce that will be incremented when searching the genesis hash"`
	Algorithm string `yaml:"algorithm" short:"a" long:"algorithm" env:"GENESIS_ALGORITHM" description:"the PoW algorithm: [SHA256|scrypt|quark-hash|argon2-hash|X11|X13|X15|xevan_hash|verthash]"`
	PubKey    string `yaml:"pubkey" short:"p" long:"pubkey" env:"GENESIS_PUBKEY" description:"the pubkey found in the output script"`
	Value     int64  `yaml:"value" short:"v" long:"value" env:"GENESIS_VALUE" description:"the value in coins for the output, full value (exp. in bitcoin 5000000000 - To get other coins value: Block Value * 100000000)"`
	Bits      Bits   `yaml:"bits" short:"b" long:"bits" env:"GENESIS_BITS" description:"the target in compact representation, associated to a difficulty of 1"`

	VerthashData  string `yaml:"verthashData" long:"verthash-data" env:"GENESIS_VERTHASH_DATA" description:"path of verthash.dat"`
	VerthashInRAM bool   `yaml:"verthashInRAM" long:"verthash-in-ram" env:"GENESIS_VERTHASH_IN_RAM" description:"load verthash.dat into memory"`

	StatusListen string `yaml:"statusListen" long:"status-listen" env:"GENESIS_STATUS_LISTEN" description:"address for the JSON status page and /metrics, e.g. :9100"`
	LogFile      string `yaml:"logFile" long:"log-file" env:"GENESIS_LOG_FILE" description:"also write the log to this file"`
	LogLevel     string `yaml:"logLevel" long:"log-level" env:"GENESIS_LOG_LEVEL" description:"error, warn, info or debug"`
}

// Default returns the parameters used when nothing else is given. Time and
// Bits are left zero and filled in by Load.
func Default() Config {
	return Config{
		Timestamp: DefaultTimestamp,
		Nonce:     DefaultNonce,
		Algorithm: string(DefaultAlgorithm),
		PubKey:    DefaultPubKey,
		LogLevel:  DefaultLogLevel,
	}
}

type loadOptions struct {
	now      func() time.Time
	readFile func(string) ([]byte, error)
	parse    flags.Options
}

type Option func(*loadOptions)

// WithClock replaces time.Now for the default block time.
func WithClock(now func() time.Time) Option {
	return func(o *loadOptions) {
		o.now = now
	}
}

// WithParserOptions replaces the default flags.HelpFlag|flags.PassDoubleDash.
func WithParserOptions(opts flags.Options) Option {
	return func(o *loadOptions) {
		o.parse = opts
	}
}

// Load builds the configuration from args (without the program name).
// A --help request is returned as a *flags.Error of type flags.ErrHelp.
func Load(args []string, opts ...Option) (Config, error) {
	o := loadOptions{
		now:      time.Now,
		readFile: os.ReadFile,
		parse:    flags.HelpFlag | flags.PassDoubleDash,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// The first pass only finds the config file and network; everything it
	// reads is parsed again on top of them.
	var first Config
	if _, err := flags.NewParser(&first, flags.PassDoubleDash|flags.IgnoreUnknown).ParseArgs(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	var fileData []byte
	if first.ConfigFile != "" {
		data, err := o.readFile(first.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, first.ConfigFile, err)
		}
		fileData = data
	}

	network := first.Network
	if network == "" && fileData != nil {
		var probe struct {
			Network string `yaml:"network"`
		}
		if err := yaml.Unmarshal(fileData, &probe); err != nil {
			return Config{}, fmt.Errorf("%w: decoding %s: %v", ErrInvalidConfig, first.ConfigFile, err)
		}
		network = probe.Network
	}
	if network != "" {
		n, err := chainnet.Lookup(network)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg.applyNetwork(n)
	}

	if fileData != nil {
		if err := yaml.Unmarshal(fileData, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: decoding %s: %v", ErrInvalidConfig, first.ConfigFile, err)
		}
	}

	parser := flags.NewParser(&cfg, o.parse)
	parser.Usage = "[OPTIONS]"
	if _, err := parser.ParseArgs(args); err != nil {
		return Config{}, err
	}
	cfg.ConfigFile = first.ConfigFile

	if cfg.Time == 0 {
		cfg.Time = uint32(o.now().Unix())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.Bits == 0 {
		cfg.Bits = Bits(pow.DefaultBits(cfg.PowAlgorithm()))
	}
	return cfg, nil
}

func (c *Config) applyNetwork(n chainnet.Network) {
	c.Network = n.Name
	c.Algorithm = string(n.Algorithm)
	c.Timestamp = n.Timestamp
	c.PubKey = n.PubKey
	c.Value = n.Value
	c.Time = n.Time
	c.Bits = Bits(n.Bits)
	c.Nonce = n.Nonce
}

// Validate checks what can be checked before any hashing. A public key of
// the right length that is not a curve point only produces a warning.
func (c *Config) Validate() error {
	alg, err := pow.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.Algorithm = string(alg)

	key, err := hex.DecodeString(c.PubKey)
	if err != nil {
		return fmt.Errorf("%w: pubkey is not hex: %v", ErrInvalidConfig, err)
	}
	if len(key) != work.PubKeyLen {
		return fmt.Errorf("%w: pubkey must be %d hex characters, got %d", ErrInvalidConfig, 2*work.PubKeyLen, len(c.PubKey))
	}
	if _, err := btcec.ParsePubKey(key); err != nil {
		logging.Warnf("pubkey is not a valid secp256k1 point (%v); the output will be unspendable", err)
	}

	if _, err := logging.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) PowAlgorithm() pow.Algorithm {
	return pow.Algorithm(c.Algorithm)
}

func (c *Config) PowOptions() pow.Options {
	return pow.Options{
		VerthashDataFile: c.VerthashData,
		VerthashInRAM:    c.VerthashInRAM,
	}
}

// Params converts the configuration for work.Prepare. Validate must have passed.
func (c *Config) Params() work.Params {
	key, _ := hex.DecodeString(c.PubKey)
	return work.Params{
		Timestamp: c.Timestamp,
		PubKey:    key,
		Value:     c.Value,
		Time:      c.Time,
		Bits:      uint32(c.Bits),
		Nonce:     c.Nonce,
	}
}
