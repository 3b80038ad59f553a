package ledger

import (
	"log/slog"
	"time"

	"github.com/pterm/pterm"
)

type Option func(*Blockchain)

// WithFingerprinter selects the digest used for every block of the chain.
func WithFingerprinter(f Fingerprinter) Option {
	return func(bc *Blockchain) {
		if f != nil {
			bc.fingerprints = f
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(bc *Blockchain) {
		if logger != nil {
			bc.logger = logger
		}
	}
}

// WithClock replaces time.Now when stamping the genesis block.
func WithClock(now func() time.Time) Option {
	return func(bc *Blockchain) {
		if now != nil {
			bc.now = now
		}
	}
}

// WithID overrides the generated chain identifier.
func WithID(id string) Option {
	return func(bc *Blockchain) {
		if id != "" {
			bc.id = id
		}
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
}
