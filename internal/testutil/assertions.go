package testutil

import (
	"errors"
	"testing"

	apperrors "financecontrol/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertKind checks that err is an *AppError of the expected taxonomy kind.
func AssertKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError of kind %q, got nil", kind)
	}
	if !apperrors.IsKind(err, kind) {
		t.Errorf("expected error kind %q, got %v", kind, err)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
