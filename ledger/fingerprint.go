package ledger

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"math"
	"strings"

	"go.dedis.ch/kyber/v4/suites"
	"golang.org/x/crypto/blake2b"
)

// FingerprintSize is the width in bytes of every fingerprint.
const FingerprintSize = 32

// Fingerprint is the digest that links a block to its content and to its
// predecessor.
type Fingerprint [FingerprintSize]byte

// GenesisPrevious is the predecessor fingerprint of the genesis block.
var GenesisPrevious = Fingerprint{}

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Short returns the first 8 hex characters, for display.
func (f Fingerprint) Short() string {
	return f.String()[:8]
}

// Fingerprinter derives the fingerprint of a block. Implementations must be
// deterministic and must not fail.
type Fingerprinter interface {
	Fingerprint(p Payload, prev Fingerprint) Fingerprint
	Name() string
}

// HashFingerprinter feeds the canonical encoding of a payload and the
// predecessor fingerprint into a fresh hash.Hash.
type HashFingerprinter struct {
	name    string
	newHash func() hash.Hash
}

var suite suites.Suite = suites.MustFind("Ed25519")

// DefaultFingerprinter returns the SHA-256 fingerprinter of the Ed25519 suite.
func DefaultFingerprinter() Fingerprinter {
	return NewSuiteFingerprinter(suite)
}

// NewSuiteFingerprinter uses the hash function of a kyber cipher suite.
func NewSuiteFingerprinter(s suites.Suite) *HashFingerprinter {
	return &HashFingerprinter{
		name:    strings.ToLower(s.String()),
		newHash: s.Hash,
	}
}

// NewBlake2bFingerprinter uses unkeyed BLAKE2b-256.
func NewBlake2bFingerprinter() *HashFingerprinter {
	return &HashFingerprinter{
		name: "blake2b",
		newHash: func() hash.Hash {
			// New256 only fails for keys longer than 64 bytes.
			h, err := blake2b.New256(nil)
			if err != nil {
				panic(err)
			}
			return h
		},
	}
}

// FingerprinterByName resolves the digest names accepted by the command line:
// "sha256" (or empty), "blake2b", or the name of a kyber suite.
func FingerprinterByName(name string) (Fingerprinter, error) {
	name = strings.ToLower(name)
	switch name {
	case "", "sha256":
		return DefaultFingerprinter(), nil
	case "blake2b":
		return NewBlake2bFingerprinter(), nil
	}
	s, err := suites.Find(name)
	if err != nil {
		return nil, fmt.Errorf("unknown digest %q: %w", name, err)
	}
	return NewSuiteFingerprinter(s), nil
}

func (h *HashFingerprinter) Name() string {
	return h.name
}

// Fingerprint hashes the canonical payload bytes followed by prev. Digests
// wider than FingerprintSize are truncated, narrower ones are zero padded.
func (h *HashFingerprinter) Fingerprint(p Payload, prev Fingerprint) Fingerprint {
	d := h.newHash()
	d.Write(canonicalPayload(p))
	d.Write(prev[:])
	var f Fingerprint
	copy(f[:], d.Sum(nil))
	return f
}

// canonicalPayload encodes a payload as
// amount(8, IEEE-754 bits) | len(sender)(4) | sender | len(receiver)(4) | receiver | timestamp(8),
// all integers big endian. Length prefixes keep distinct key pairs from
// producing the same byte stream.
func canonicalPayload(p Payload) []byte {
	buf := make([]byte, 0, 24+len(p.SenderKey)+len(p.ReceiverKey))
	buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(p.Amount))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(p.SenderKey)))
	buf = append(buf, p.SenderKey...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(p.ReceiverKey)))
	buf = append(buf, p.ReceiverKey...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(p.Timestamp))
	return buf
}
