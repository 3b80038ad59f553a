package ledger

// Payload is the transaction recorded by a block.
type Payload struct {
	Amount      float64 `json:"amount"`
	SenderKey   string  `json:"sender_key"`
	ReceiverKey string  `json:"receiver_key"`
	Timestamp   int64   `json:"timestamp"`
}

// Block is a single entry of the blockchain. Its fields are only readable
// through accessors, so a Block handed out by the chain cannot be used to
// rewrite its content.
type Block struct {
	index        int
	payload      Payload
	prevHash     Fingerprint
	hash         Fingerprint
	fingerprints Fingerprinter
}

// NewBlock builds a block and computes its fingerprint from the payload and
// the fingerprint of its predecessor. It never fails.
func NewBlock(index int, payload Payload, prev Fingerprint, f Fingerprinter) Block {
	if f == nil {
		f = DefaultFingerprinter()
	}
	b := Block{
		index:        index,
		payload:      payload,
		prevHash:     prev,
		fingerprints: f,
	}
	b.hash = f.Fingerprint(payload, prev)
	return b
}

func (b Block) Index() int {
	return b.index
}

// Payload returns a copy of the recorded transaction.
func (b Block) Payload() Payload {
	return b.payload
}

// Fingerprint returns the fingerprint stored at construction time.
func (b Block) Fingerprint() Fingerprint {
	return b.hash
}

func (b Block) PreviousFingerprint() Fingerprint {
	return b.prevHash
}

// IsIntegrityValid recomputes the fingerprint from the current payload and
// reports whether it still matches the stored one.
func (b Block) IsIntegrityValid() bool {
	if b.fingerprints == nil {
		return false
	}
	return b.fingerprints.Fingerprint(b.payload, b.prevHash) == b.hash
}
