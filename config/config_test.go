package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gertjaap/genesis-go/pow"
)

const satoshiKey = "04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5f"

var fixedNow = time.Unix(1700000000, 0)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	return Load(args, WithClock(func() time.Time { return fixedNow }))
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, DefaultTimestamp, cfg.Timestamp)
	assert.Equal(t, uint32(DefaultNonce), cfg.Nonce)
	assert.Equal(t, pow.Scrypt, cfg.PowAlgorithm())
	assert.Equal(t, DefaultPubKey, cfg.PubKey)
	assert.Equal(t, int64(0), cfg.Value)
	assert.Equal(t, uint32(fixedNow.Unix()), cfg.Time)
	assert.Equal(t, Bits(0x1e0ffff0), cfg.Bits)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_BitsFollowAlgorithm(t *testing.T) {
	cfg, err := load(t, "-a", "SHA256")
	require.NoError(t, err)
	assert.Equal(t, Bits(0x1d00ffff), cfg.Bits)

	cfg, err = load(t, "-a", "X11")
	require.NoError(t, err)
	assert.Equal(t, Bits(0x1e0ffff0), cfg.Bits)

	cfg, err = load(t, "-a", "SHA256", "-b", "0x207fffff")
	require.NoError(t, err)
	assert.Equal(t, Bits(0x207fffff), cfg.Bits)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := load(t,
		"-t", "1231006505",
		"-z", "The Times 03/Jan/2009 Chancellor on brink of second bailout for banks",
		"-n", "2083236893",
		"-a", "SHA256",
		"-p", satoshiKey,
		"-v", "5000000000",
		"-b", "486604799",
		"--log-level", "debug",
	)
	require.NoError(t, err)

	assert.Equal(t, uint32(1231006505), cfg.Time)
	assert.Equal(t, "The Times 03/Jan/2009 Chancellor on brink of second bailout for banks", cfg.Timestamp)
	assert.Equal(t, uint32(2083236893), cfg.Nonce)
	assert.Equal(t, pow.SHA256, cfg.PowAlgorithm())
	assert.Equal(t, satoshiKey, cfg.PubKey)
	assert.Equal(t, int64(5000000000), cfg.Value)
	assert.Equal(t, Bits(0x1d00ffff), cfg.Bits)
	assert.Equal(t, "debug", cfg.LogLevel)

	p := cfg.Params()
	assert.Len(t, p.PubKey, 65)
	assert.Equal(t, byte(0x04), p.PubKey[0])
	assert.Equal(t, uint32(0x1d00ffff), p.Bits)
	assert.Equal(t, cfg.Nonce, p.Nonce)
	assert.Equal(t, cfg.Timestamp, p.Timestamp)
}

func TestLoad_Network(t *testing.T) {
	cfg, err := load(t, "--network", "regtest")
	require.NoError(t, err)
	assert.Equal(t, "regtest", cfg.Network)
	assert.Equal(t, pow.SHA256, cfg.PowAlgorithm())
	assert.Equal(t, uint32(1296688602), cfg.Time)
	assert.Equal(t, Bits(0x207fffff), cfg.Bits)
	assert.Equal(t, uint32(2), cfg.Nonce)
	assert.Equal(t, satoshiKey, cfg.PubKey)
	assert.Equal(t, int64(5000000000), cfg.Value)

	// flags still win over the preset
	cfg, err = load(t, "--network", "regtest", "-n", "0")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), cfg.Nonce)
	assert.Equal(t, Bits(0x207fffff), cfg.Bits)
}

func TestLoad_YAML(t *testing.T) {
	path := writeYAML(t, strings.Join([]string{
		"network: litecoin",
		"nonce: 7",
		"bits: 0x1e0fffff",
		"logLevel: warn",
		"verthashData: /data/verthash.dat",
		"statusListen: 127.0.0.1:9100",
	}, "\n"))

	cfg, err := load(t, "--config", path, "-n", "9")
	require.NoError(t, err)

	assert.Equal(t, "litecoin", cfg.Network)
	assert.Equal(t, pow.Scrypt, cfg.PowAlgorithm())
	assert.Equal(t, uint32(1317972665), cfg.Time)
	assert.Equal(t, uint32(9), cfg.Nonce)
	assert.Equal(t, Bits(0x1e0fffff), cfg.Bits)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "127.0.0.1:9100", cfg.StatusListen)
	assert.Equal(t, pow.Options{VerthashDataFile: "/data/verthash.dat"}, cfg.PowOptions())
}

func TestLoad_YAMLDecimalBitsAndFlagNetwork(t *testing.T) {
	path := writeYAML(t, "network: litecoin\nbits: 486604799\n")

	// --network on the command line replaces the file's network
	cfg, err := load(t, "-c", path, "--network", "testnet3")
	require.NoError(t, err)
	assert.Equal(t, "testnet3", cfg.Network)
	assert.Equal(t, pow.SHA256, cfg.PowAlgorithm())
	assert.Equal(t, uint32(1296688602), cfg.Time)
	assert.Equal(t, Bits(0x1d00ffff), cfg.Bits)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GENESIS_NONCE", "42")
	t.Setenv("GENESIS_ALGORITHM", "SHA256")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), cfg.Nonce)
	assert.Equal(t, pow.SHA256, cfg.PowAlgorithm())

	cfg, err = load(t, "-n", "43")
	require.NoError(t, err)
	assert.Equal(t, uint32(43), cfg.Nonce)
}

func TestLoad_InvalidCurvePointOnlyWarns(t *testing.T) {
	cfg, err := load(t, "-p", "04"+strings.Repeat("00", 64))
	require.NoError(t, err)
	assert.Len(t, cfg.Params().PubKey, 65)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"algorithm", []string{"-a", "sha256"}},
		{"pubkey length", []string{"-p", "04abcd"}},
		{"pubkey hex", []string{"-p", strings.Repeat("zz", 65)}},
		{"network", []string{"--network", "dogecoin"}},
		{"config file", []string{"--config", "/does/not/exist.yaml"}},
		{"log level", []string{"--log-level", "verbose"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestLoad_FlagErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-b", "0xnothex"},
		{"-n", "-1"},
		{"--no-such-flag"},
	} {
		_, err := load(t, args...)
		require.Error(t, err, "%v", args)
		var ferr *flags.Error
		assert.True(t, errors.As(err, &ferr), "%v: %v", args, err)
	}
}

func TestLoad_Help(t *testing.T) {
	_, err := load(t, "--help")
	require.Error(t, err)
	assert.True(t, flags.WroteHelp(err))
	assert.Contains(t, err.Error(), "--timestamp")
}

func TestParseBits(t *testing.T) {
	tests := []struct {
		in      string
		want    Bits
		wantErr bool
	}{
		{"0x1d00ffff", 0x1d00ffff, false},
		{"0X1E0FFFF0", 0x1e0ffff0, false},
		{"486604799", 0x1d00ffff, false},
		{" 0x207fffff ", 0x207fffff, false},
		{"0x100000000", 0, true},
		{"4294967296", 0, true},
		{"ffff", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseBits(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "0x1d00ffff", Bits(0x1d00ffff).String())
}
