package errors

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchError(t *testing.T) {
	err := NewFetchError("load activities", io.ErrUnexpectedEOF).
		WithURL("http://localhost:8000/activities").
		WithStatus(502).
		WithRequestID("req-1")

	msg := err.Error()
	for _, want := range []string{"fetch error", "url=http://localhost:8000/activities", "status=502", "request=req-1", "unexpected EOF"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want it to contain %q", msg, want)
		}
	}

	if !Is(err, ErrCatalogUnavailable) {
		t.Error("FetchError should match ErrCatalogUnavailable")
	}
	if !Is(err, io.ErrUnexpectedEOF) {
		t.Error("FetchError should match its cause")
	}
	if !IsRetryable(err) {
		t.Error("FetchError should be retryable")
	}
	if IsUserFacing(err) {
		t.Error("FetchError message should not be user-facing")
	}
}

func TestSignupErrorRejectedVsFailed(t *testing.T) {
	rejected := NewSignupError("sign-up rejected", ErrSignupRejected).
		WithActivity("Chess Club").
		WithEmail("a@example.com").
		WithResponse(400, "Activity full")

	if !Is(rejected, ErrSignupRejected) {
		t.Error("rejected error should match ErrSignupRejected")
	}
	if Is(rejected, ErrSignupFailed) {
		t.Error("rejected error should not match ErrSignupFailed")
	}
	if !HasResponse(rejected) {
		t.Error("HasResponse() = false, want true")
	}
	if got := StatusCode(rejected); got != 400 {
		t.Errorf("StatusCode() = %d, want 400", got)
	}

	failed := NewSignupError("sign-up request failed", io.EOF).WithActivity("Chess Club")
	if !Is(failed, ErrSignupFailed) {
		t.Error("failed error should match ErrSignupFailed")
	}
	if Is(failed, ErrSignupRejected) {
		t.Error("failed error should not match ErrSignupRejected")
	}
	if HasResponse(failed) {
		t.Error("HasResponse() = true, want false")
	}
}

func TestRemovalErrorMatching(t *testing.T) {
	err := NewRemovalError("removal rejected", ErrRemovalRejected).
		WithActivity("Chess Club").
		WithEmail("a@example.com").
		WithResponse(404, "Activity not found")

	var removalErr *RemovalError
	if !As(err, &removalErr) {
		t.Fatal("As(*RemovalError) = false")
	}
	if removalErr.Email != "a@example.com" {
		t.Errorf("Email = %q, want %q", removalErr.Email, "a@example.com")
	}
	if !Is(err, &RemovalError{}) {
		t.Error("RemovalError should match *RemovalError target")
	}
	if Is(err, &SignupError{}) {
		t.Error("RemovalError should not match *SignupError target")
	}

	msg := err.Error()
	for _, want := range []string{"removal error", "activity=Chess Club", "email=a@example.com", "status=404", "Activity not found"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want it to contain %q", msg, want)
		}
	}
}

func TestDetailOr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name:     "detail from response",
			err:      NewSignupError("rejected", ErrSignupRejected).WithResponse(400, "Activity full"),
			fallback: "An error occurred",
			want:     "Activity full",
		},
		{
			name:     "response without detail",
			err:      NewSignupError("rejected", ErrSignupRejected).WithResponse(500, ""),
			fallback: "An error occurred",
			want:     "An error occurred",
		},
		{
			name:     "no response",
			err:      NewRemovalError("failed", io.EOF),
			fallback: "Failed to remove participant. Try again.",
			want:     "Failed to remove participant. Try again.",
		},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("outer: %w", NewRemovalError("rejected", ErrRemovalRejected).WithResponse(400, "Student is not signed up")),
			fallback: "Failed to remove participant",
			want:     "Student is not signed up",
		},
		{
			name:     "plain error",
			err:      New("boom"),
			fallback: "fallback",
			want:     "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetailOr(tt.err, tt.fallback); got != tt.want {
				t.Errorf("DetailOr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassificationOnPlainErrors(t *testing.T) {
	plain := New("plain")

	if IsRetryable(plain) {
		t.Error("plain error should not be retryable")
	}
	if IsRetryable(nil) {
		t.Error("nil should not be retryable")
	}
	if !IsRetryable(Wrap(ErrTimeout, "fetch")) {
		t.Error("wrapped ErrTimeout should be retryable")
	}
	if IsUserFacing(plain) {
		t.Error("plain error should not be user-facing")
	}
	if GetSeverity(plain) != SeverityError {
		t.Errorf("GetSeverity(plain) = %v, want error", GetSeverity(plain))
	}
	if GetSeverity(nil) != SeverityDebug {
		t.Errorf("GetSeverity(nil) = %v, want debug", GetSeverity(nil))
	}
	if GetSeverity(NewSignupError("x", nil)) != SeverityWarning {
		t.Error("SignupError severity should be warning")
	}
	if StatusCode(plain) != 0 {
		t.Error("StatusCode(plain) should be 0")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}

	base := NewFetchError("load", nil)
	wrapped := Wrapf(base, "board %s", "refresh")
	if !strings.HasPrefix(wrapped.Error(), "board refresh: ") {
		t.Errorf("Wrapf() = %q", wrapped.Error())
	}
	var fetchErr *FetchError
	if !As(wrapped, &fetchErr) {
		t.Error("wrapped error should still be a *FetchError")
	}
}
