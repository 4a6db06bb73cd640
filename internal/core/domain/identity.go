package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// DocumentID derives the stable knowledge-base document identifier for a
// repository path. The identifier is the hex SHA-256 digest of the UTF-8
// path string, so identical paths always map to the same document and
// distinct paths collide only with cryptographic improbability.
//
// This digest is the only join between the repository's file namespace
// and the knowledge base's document namespace; no mapping table is kept.
func DocumentID(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:])
}

// ContentHash derives the digest recorded alongside file content in
// change records and knowledge-base metadata.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
