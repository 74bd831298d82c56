package util

import (
	"strings"
	"testing"
)

func TestGenerateResetCode(t *testing.T) {
	code, err := GenerateResetCode(6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6 characters, got %d", len(code))
	}
	for _, r := range code {
		if !strings.ContainsRune(resetCodeAlphabet, r) {
			t.Fatalf("character %q outside alphabet", r)
		}
	}
}

func TestGenerateResetCodeDefaultsLength(t *testing.T) {
	code, err := GenerateResetCode(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected default length 6, got %d", len(code))
	}
}

func TestGenerateResetCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateResetCode(6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected generated codes to vary")
	}
}
