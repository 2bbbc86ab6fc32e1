package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidLabel, "invalid sublattice label: %q", "C")

	if got, want := err.Code, ErrCodeInvalidLabel; got != want {
		t.Errorf("Code = %s, want %s", got, want)
	}
	if got, want := err.Message, `invalid sublattice label: "C"`; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
	if got, want := err.Error(), `INVALID_LABEL: invalid sublattice label: "C"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("no such file")
	err := Wrap(ErrCodeFileNotFound, cause, "read lattice %s", "lat.json")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if got, want := err.Error(), "FILE_NOT_FOUND: read lattice lat.json: no such file"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "missing cell size")

	if !Is(err, ErrCodeInvalidConfig) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match a plain error")
	}
}

func TestIs_WrappedChain(t *testing.T) {
	inner := New(ErrCodeInvalidLabel, "bad label")
	outer := fmt.Errorf("transform: %w", inner)

	if !Is(outer, ErrCodeInvalidLabel) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
	if got, want := GetCode(outer), ErrCodeInvalidLabel; got != want {
		t.Errorf("GetCode = %s, want %s", got, want)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "patch radius must be >= 0")
	if got, want := UserMessage(err), "patch radius must be >= 0"; got != want {
		t.Errorf("UserMessage = %q, want %q", got, want)
	}

	plain := stderrors.New("something broke")
	if got, want := UserMessage(plain), "something broke"; got != want {
		t.Errorf("UserMessage(plain) = %q, want %q", got, want)
	}
}
