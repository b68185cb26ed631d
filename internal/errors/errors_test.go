package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestCryptoError(t *testing.T) {
	baseErr := errors.New("base error")
	cerr := NewCryptoError("sender-exchange", baseErr)

	errStr := cerr.Error()
	if !strings.Contains(errStr, "sender-exchange") {
		t.Errorf("Error string should contain operation: %q", errStr)
	}
	if !strings.Contains(errStr, "base error") {
		t.Errorf("Error string should contain base error: %q", errStr)
	}

	if unwrapped := cerr.Unwrap(); unwrapped != baseErr {
		t.Errorf("Unwrap() returned %v, want %v", unwrapped, baseErr)
	}
	if cerr.Op != "sender-exchange" {
		t.Errorf("Op = %q, want %q", cerr.Op, "sender-exchange")
	}
}

func TestIncorrectPubKeyLengthError(t *testing.T) {
	err := NewIncorrectPubKeyLengthError(31)
	if !strings.Contains(err.Error(), "31") {
		t.Errorf("Error string should contain the observed length: %q", err.Error())
	}

	var target *IncorrectPubKeyLengthError
	if !As(err, &target) {
		t.Fatal("As() should extract *IncorrectPubKeyLengthError")
	}
	if target.Length != 31 {
		t.Errorf("Length = %d, want 31", target.Length)
	}
}

func TestIsFunction(t *testing.T) {
	if !Is(ErrIncorrectHRP, ErrIncorrectHRP) {
		t.Error("Is() should return true for matching sentinel error")
	}

	wrapped := NewCryptoError("parse-identity", ErrIncorrectBech32Variant)
	if !Is(wrapped, ErrIncorrectBech32Variant) {
		t.Error("Is() should return true for a wrapped sentinel error")
	}

	if Is(ErrIncorrectHRP, ErrIncorrectBech32Variant) {
		t.Error("Is() should return false for non-matching errors")
	}
}

func TestAsFunction(t *testing.T) {
	cerr := NewCryptoError("encrypt-in-place", ErrKeystreamFailure)

	var target *CryptoError
	if !As(cerr, &target) {
		t.Fatal("As() should return true for a matching type")
	}
	if target.Op != "encrypt-in-place" {
		t.Errorf("As() extracted Op = %q, want %q", target.Op, "encrypt-in-place")
	}

	var lenErr *IncorrectPubKeyLengthError
	if As(cerr, &lenErr) {
		t.Error("As() should return false for a non-matching type")
	}
}

func TestSentinelErrorsAreNonEmpty(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrIncorrectHRP", ErrIncorrectHRP},
		{"ErrIncorrectBech32Variant", ErrIncorrectBech32Variant},
		{"ErrAuthenticationFailure", ErrAuthenticationFailure},
		{"ErrKeystreamFailure", ErrKeystreamFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil || tt.err.Error() == "" {
				t.Errorf("%s must be a non-nil, non-empty sentinel error", tt.name)
			}
		})
	}
}

// TestAuthenticationFailureDistinctFromKeystreamFailure guards that the
// single sentinel used for every authentication failure (tag mismatch,
// wrong key, nonce, or associated data alike) is not the same value as
// the keystream-failure sentinel.
func TestAuthenticationFailureDistinctFromKeystreamFailure(t *testing.T) {
	if ErrAuthenticationFailure == ErrKeystreamFailure {
		t.Fatal("authentication and keystream failures must remain distinct sentinels")
	}
}

func TestNilErrorHandling(t *testing.T) {
	if Is(nil, ErrIncorrectHRP) {
		t.Error("Is(nil, target) should return false")
	}
	var target *CryptoError
	if As(nil, &target) {
		t.Error("As(nil, target) should return false")
	}
}
