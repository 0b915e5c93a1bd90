package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ChainTxHash is the placeholder blockchain collaborator: it hashes the
// canonical JSON encoding of the payload and returns a "0x…" transaction
// hash. There is no chain and no read-back; the hash exists only so verified
// completions have a stable, opaque receipt.
func ChainTxHash(payload interface{}) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode chain payload: %w", err)
	}
	sum := sha256.Sum256(raw)
	return "0x" + hex.EncodeToString(sum[:]), nil
}
