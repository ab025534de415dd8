package work

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Hasher computes the raw proof-of-work digest of a header. pow.Hasher
	// satisfies it.
	Hasher interface {
		Hash(header []byte) ([32]byte, error)
	}

	// NonceObserver is called once per search iteration with the nonce that
	// was just hashed.
	NonceObserver interface {
		Observe(nonce uint32) bool
	}

	// ProgressReporter receives hashrate checkpoints.
	ProgressReporter interface {
		ReportProgress(p Progress)
	}
)
