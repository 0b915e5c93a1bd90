package utils

import (
	"strings"
	"testing"
)

func TestChainTxHashDeterministic(t *testing.T) {
	payload := map[string]interface{}{"task_id": 1, "points": 80}

	h1, err := ChainTxHash(payload)
	if err != nil {
		t.Fatalf("ChainTxHash: %v", err)
	}
	h2, err := ChainTxHash(payload)
	if err != nil {
		t.Fatalf("ChainTxHash: %v", err)
	}
	if h1 != h2 {
		t.Errorf("hash not deterministic: %s vs %s", h1, h2)
	}
	if !strings.HasPrefix(h1, "0x") || len(h1) != 66 {
		t.Errorf("hash = %q, want 0x-prefixed 64 hex chars", h1)
	}
}

func TestChainTxHashDistinguishesPayloads(t *testing.T) {
	h1, _ := ChainTxHash(map[string]interface{}{"task_id": 1})
	h2, _ := ChainTxHash(map[string]interface{}{"task_id": 2})
	if h1 == h2 {
		t.Error("different payloads produced the same hash")
	}
}

func TestChainTxHashRejectsUnencodable(t *testing.T) {
	if _, err := ChainTxHash(map[string]interface{}{"bad": func() {}}); err == nil {
		t.Error("expected error for unencodable payload")
	}
}
