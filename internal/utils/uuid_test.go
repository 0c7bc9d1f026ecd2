package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTraceIDGenerator_GenerateV7(t *testing.T) {
	g := NewTraceIDGenerator()

	id, err := uuid.Parse(g.Generate())

	if err != nil {
		t.Fatalf("expected a valid UUID, got error: %v", err)
	}
	if id.Version() != 7 {
		t.Errorf("expected UUID version 7, got %d", id.Version())
	}
}

func TestTraceIDGenerator_Unique(t *testing.T) {
	g := NewTraceIDGenerator()
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		id := g.Generate()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate trace id %s", id)
		}
		seen[id] = struct{}{}
	}
}
