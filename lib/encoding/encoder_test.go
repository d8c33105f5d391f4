package encoding

import (
	"errors"
	"fmt"
	"testing"
)

func sample() map[string]any {
	return map[string]any{
		"count": 12345,
		"name":  "test-file.txt",
		"flag":  true,
		"ratio": 2.5,
	}
}

// assertSnapshot compares decoded values by their printed form, since
// msgpack widens integer types on the way back.
func assertSnapshot(t *testing.T, want, got map[string]any) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("decoded %d keys, want %d: %v", len(got), len(want), got)
	}
	for k, v := range want {
		if fmt.Sprint(got[k]) != fmt.Sprint(v) {
			t.Errorf("%s mismatch: got %v, want %v", k, got[k], v)
		}
	}
}

func TestNewEncoder(t *testing.T) {
	// Should work with any key length (derives 32-byte key)
	if _, err := NewEncoder([]byte("short")); err != nil {
		t.Fatalf("NewEncoder with short key failed: %v", err)
	}
	if _, err := NewEncoder([]byte("this-is-a-32-byte-key-for-aes!!!")); err != nil {
		t.Fatalf("NewEncoder with 32-byte key failed: %v", err)
	}
	if _, err := NewEncoder([]byte("a-key-that-is-rather-longer-than-thirty-two-bytes")); err != nil {
		t.Fatalf("NewEncoder with long key failed: %v", err)
	}
}

func TestSignedRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	encoded, err := enc.Encode(sample(), false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if encoded == "" {
		t.Fatal("Encoded string is empty")
	}

	decoded, err := enc.Decode(encoded, false)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertSnapshot(t, sample(), decoded)
}

func TestEncryptedRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	encoded, err := enc.Encode(sample(), true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := enc.Decode(encoded, true)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	assertSnapshot(t, sample(), decoded)
}

func TestIntegersWiden(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	encoded, err := enc.Encode(map[string]any{"n": -3}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := enc.Decode(encoded, false)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if _, ok := decoded["n"].(int64); !ok {
		t.Errorf("negative integer decoded as %T, want int64", decoded["n"])
	}
}

func TestSignatureVerificationFailure(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	encoded, err := enc.Encode(map[string]any{"count": 1}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Tamper with the signature
	tampered := encoded[:len(encoded)-2] + "XX"

	_, err = enc.Decode(tampered, false)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Expected ErrSignatureInvalid, got: %v", err)
	}
}

func TestDecryptionFailure(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	encoded, err := enc.Encode(map[string]any{"count": 1}, true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	tampered := encoded[:len(encoded)-2] + "XX"

	_, err = enc.Decode(tampered, true)
	if err == nil {
		t.Error("Expected error for tampered ciphertext, got nil")
	}
}

func TestInvalidFormat(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	// Missing signature separator
	_, err = enc.Decode("invalidbase64withoutseparator", false)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got: %v", err)
	}

	_, err = enc.Decode("c2hvcnQ", true)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for short ciphertext, got: %v", err)
	}
}

func TestDifferentKeysCannotDecode(t *testing.T) {
	enc1, _ := NewEncoder([]byte("key-one"))
	enc2, _ := NewEncoder([]byte("key-two"))

	encoded, err := enc1.Encode(map[string]any{"count": 1}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if _, err := enc2.Decode(encoded, false); err == nil {
		t.Error("Expected error when decoding with different key")
	}
}

func TestEmptySnapshot(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	encoded, err := enc.Encode(nil, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := enc.Decode(encoded, false)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded == nil || len(decoded) != 0 {
		t.Errorf("Empty snapshot not decoded correctly: %v", decoded)
	}
}
