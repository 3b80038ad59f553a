// Package ledger implements an append-only, hash-linked ledger of
// transactions.
//
// # Core Components
//
// Blockchain: An ordered sequence of blocks that starts with a genesis block
// and only grows through Append.
//
// Block: A single transaction together with the fingerprint of its
// predecessor and its own fingerprint, computed once when the block is built.
//
// Fingerprinter: The digest used to derive fingerprints. SHA-256 from the
// kyber Ed25519 suite is the default; BLAKE2b-256 is also available.
//
// # Security Properties
//
// The blockchain provides:
//   - Linkage: every block stores the fingerprint of the block before it
//   - Tamper detection: a payload changed after construction no longer
//     matches the stored fingerprint
//   - Auditability: Verify walks the whole chain on every call
//
// # Usage
//
// Create a blockchain with NewBlockchain, append payloads, and call IsValid
// or Verify at any time. Blocks returned by LatestBlock or GetByIndex are
// read-only copies; ForceCorrupt is the only way to alter a stored block and
// exists to demonstrate tamper detection.
package ledger
