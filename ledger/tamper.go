package ledger

import "fmt"

// ForceCorrupt rewrites the payload of a stored block in place without
// recomputing its fingerprint. It breaks the chain on purpose and exists only
// to demonstrate and test tamper detection; never use it to change data.
func ForceCorrupt(bc *Blockchain, index int, mutate func(*Payload)) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if index < 0 || index >= len(bc.blocks) {
		return fmt.Errorf("cannot corrupt block: %w: %d", ErrOutOfRange, index)
	}
	mutate(&bc.blocks[index].payload)
	bc.logger.Debug("block corrupted", "chain", bc.id, "index", index)
	return nil
}
