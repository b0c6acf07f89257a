package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("n", "must be >= 0")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("code = %s, want %s", err.Code, ErrCodeInvalidArgument)
	}
	if err.Retryable {
		t.Error("invalid argument must not be retryable")
	}
	if err.Details["argument"] != "n" {
		t.Errorf("details = %v, want argument=n", err.Details)
	}
	if !strings.Contains(err.Error(), "must be >= 0") {
		t.Errorf("message missing reason: %q", err.Error())
	}
}

func TestOverflow(t *testing.T) {
	err := Overflow("candidate increment", 9223372036854775807)
	if err.Code != ErrCodeNumericOverflow {
		t.Errorf("code = %s, want %s", err.Code, ErrCodeNumericOverflow)
	}
	if err.Details["operation"] != "candidate increment" {
		t.Errorf("details = %v", err.Details)
	}
}

func TestExhausted(t *testing.T) {
	err := Exhausted("prime sequence")
	if err.Code != ErrCodeSequenceExhausted {
		t.Errorf("code = %s, want %s", err.Code, ErrCodeSequenceExhausted)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Internal(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("cause missing from message: %q", err.Error())
	}
}

func TestCode_Wrapped(t *testing.T) {
	inner := InvalidArgument("n", "negative")
	wrapped := fmt.Errorf("take failed: %w", inner)
	if got := Code(wrapped); got != ErrCodeInvalidArgument {
		t.Errorf("Code(wrapped) = %s, want %s", got, ErrCodeInvalidArgument)
	}
	if !IsInvalidArgument(wrapped) {
		t.Error("IsInvalidArgument should unwrap")
	}
}

func TestCode_NonAppError(t *testing.T) {
	if got := Code(stderrors.New("plain")); got != ErrCodeInternal {
		t.Errorf("Code(plain) = %s, want %s", got, ErrCodeInternal)
	}
	if got := Code(nil); got != "" {
		t.Errorf("Code(nil) = %q, want empty", got)
	}
}

func TestIsRetryableCode(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeInvalidArgument,
		ErrCodeNumericOverflow,
		ErrCodeSequenceExhausted,
		ErrCodeInternal,
	}
	for _, code := range codes {
		if IsRetryableCode(code) {
			t.Errorf("code %s should not be retryable", code)
		}
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeInternal, "broken").WithDetail("stage", 3)
	if err.Details["stage"] != 3 {
		t.Errorf("details = %v, want stage=3", err.Details)
	}
}
