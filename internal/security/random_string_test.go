package security

import (
	"strings"
	"testing"
)

func TestRandomStringLength(t *testing.T) {
	t.Parallel()

	value, err := RandomString(16, "ABCDEF123456")
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	if len(value) != 16 {
		t.Fatalf("RandomString len = %d, want 16", len(value))
	}
}

func TestRandomStringZeroLength(t *testing.T) {
	t.Parallel()

	value, err := RandomString(0, "AB")
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	if value != "" {
		t.Fatalf("RandomString zero length = %q, want empty", value)
	}
}

func TestRandomStringRejectsBadInput(t *testing.T) {
	t.Parallel()

	if _, err := RandomString(-1, "AB"); err == nil {
		t.Fatal("expected error for negative length")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatal("expected error for empty alphabet")
	}
}

func TestRandomStringStaysInAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	value, err := RandomString(64, alphabet)
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	for _, char := range value {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("value %q contains char %q outside alphabet", value, char)
		}
	}
}
