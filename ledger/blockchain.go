package ledger

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGenesis    = errors.New("invalid genesis block")
	ErrIntegrity  = errors.New("fingerprint mismatch")
	ErrBrokenLink = errors.New("previous fingerprint mismatch")
	ErrIndexGap   = errors.New("index out of sequence")
	ErrOutOfRange = errors.New("index out of range")
)

// SentinelKey is the sender and receiver of the genesis payload.
const SentinelKey = "None"

type Blockchain struct {
	mu           sync.RWMutex
	blocks       []Block
	id           string
	fingerprints Fingerprinter
	logger       *slog.Logger
	now          func() time.Time
}

// NewBlockchain creates a new blockchain holding only its genesis block.
// The genesis block has index 0, a zero amount, SentinelKey as sender and
// receiver, and GenesisPrevious as predecessor fingerprint.
func NewBlockchain(opts ...Option) *Blockchain {
	bc := &Blockchain{
		blocks:       make([]Block, 0, 1),
		id:           uuid.New().String(),
		fingerprints: DefaultFingerprinter(),
		logger:       defaultLogger(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(bc)
	}

	genesis := NewBlock(0, Payload{
		Amount:      0,
		SenderKey:   SentinelKey,
		ReceiverKey: SentinelKey,
		Timestamp:   bc.now().Unix(),
	}, GenesisPrevious, bc.fingerprints)
	bc.blocks = append(bc.blocks, genesis)

	bc.logger.Debug("blockchain created",
		"chain", bc.id,
		"digest", bc.fingerprints.Name(),
		"genesis", genesis.Fingerprint().String())
	return bc
}

// ID identifies this chain instance in logs.
func (bc *Blockchain) ID() string {
	return bc.id
}

// Append links a new block holding p to the latest block and adds it to the
// chain. The new block takes the next free index.
func (bc *Blockchain) Append(p Payload) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	latest := bc.blocks[len(bc.blocks)-1]
	b := NewBlock(len(bc.blocks), p, latest.Fingerprint(), bc.fingerprints)
	bc.blocks = append(bc.blocks, b)

	bc.logger.Debug("block appended",
		"chain", bc.id,
		"index", b.Index(),
		"fingerprint", b.Fingerprint().String())
}

// LatestBlock returns a copy of the most recently appended block, or the
// genesis block when nothing was appended.
func (bc *Blockchain) LatestBlock() Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.blocks[len(bc.blocks)-1]
}

// GetByIndex returns a copy of the block at index.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(bc.blocks))
	}
	return bc.blocks[index], nil
}

func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// Blocks returns a copy of the whole chain, genesis first.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]Block, len(bc.blocks))
	copy(out, bc.blocks)
	return out
}

// IsValid reports whether every block passes its integrity check and is
// linked to the block before it.
func (bc *Blockchain) IsValid() bool {
	return bc.Verify() == nil
}

// Verify walks the chain from genesis to the latest block and returns the
// first problem found. Nothing is cached between calls.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	err := verifyBlocks(bc.blocks)
	if err != nil {
		bc.logger.Warn("chain verification failed", "chain", bc.id, "error", err.Error())
	}
	return err
}

func verifyBlocks(blocks []Block) error {
	if len(blocks) == 0 {
		return fmt.Errorf("%w: empty chain", ErrGenesis)
	}
	if blocks[0].Index() != 0 || blocks[0].PreviousFingerprint() != GenesisPrevious {
		return ErrGenesis
	}

	for i, current := range blocks {
		if !current.IsIntegrityValid() {
			return fmt.Errorf("block %d invalid: %w", i, ErrIntegrity)
		}
		if i == 0 {
			continue
		}
		previous := blocks[i-1]
		if current.Index() != previous.Index()+1 {
			return fmt.Errorf("block %d invalid: %w: expected %d, got %d",
				i, ErrIndexGap, previous.Index()+1, current.Index())
		}
		if current.PreviousFingerprint() != previous.Fingerprint() {
			return fmt.Errorf("block %d invalid: %w: expected %s, got %s",
				i, ErrBrokenLink, previous.Fingerprint(), current.PreviousFingerprint())
		}
	}
	return nil
}
