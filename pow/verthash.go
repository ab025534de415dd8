package pow

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gertjaap/verthash-go"

	"github.com/gertjaap/genesis-go/logging"
)

const verthashHeaderSize = 80

type verthasher struct {
	v *verthash.Verthash
}

// locateVerthashData returns the configured data file, falling back to the
// default location used by vertcoind.
func locateVerthashData(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			logging.Debugf("Verthash: found verthash.dat at configured path: %s", configured)
			return configured, nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("error accessing configured verthash.dat at %s: %w", configured, err)
		}
		logging.Warnf("Verthash: configured path '%s' for verthash.dat not found", configured)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: verthash.dat not configured and home directory unknown", ErrMissingImplementation)
	}
	defaultPath := filepath.Join(homeDir, ".vertcoin", "verthash.dat")
	if _, err := os.Stat(defaultPath); err != nil {
		return "", fmt.Errorf("%w: cannot run %s algorithm, verthash.dat not found (last path checked: %s)", ErrMissingImplementation, Verthash, defaultPath)
	}
	logging.Debugf("Verthash: found verthash.dat at default user path: %s", defaultPath)
	return defaultPath, nil
}

func newVerthasher(opts Options) (Hasher, error) {
	path, err := locateVerthashData(opts.VerthashDataFile)
	if err != nil {
		return nil, err
	}
	v, err := verthash.NewVerthash(path, opts.VerthashInRAM)
	if err != nil {
		return nil, fmt.Errorf("%w: verthash: failed to open '%s': %v", ErrMissingImplementation, path, err)
	}
	logging.Infof("Verthash: initialized with %s (in RAM: %t)", path, opts.VerthashInRAM)
	return &verthasher{v: v}, nil
}

func (h *verthasher) Algorithm() Algorithm {
	return Verthash
}

func (h *verthasher) Hash(header []byte) ([32]byte, error) {
	if len(header) != verthashHeaderSize {
		return [32]byte{}, fmt.Errorf("verthash: header must be %d bytes, got %d", verthashHeaderSize, len(header))
	}
	sum, err := h.v.SumVerthash(header)
	if err != nil {
		return [32]byte{}, fmt.Errorf("verthash: %w", err)
	}
	return sum, nil
}

func (h *verthasher) Close() error {
	h.v.Close()
	return nil
}
