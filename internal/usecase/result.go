// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	domainerrors "photodeck/internal/domain/errors"
)

// Result is the outcome of an operation whose failure modes are expected
// business conditions rather than faults. Error returns on the usecase
// interfaces are reserved for infrastructure problems; anything a caller did
// wrong comes back as an unsuccessful Result with a stable business code and
// user-facing messages.
type Result struct {
	Success bool
	Code    string   // Business code, empty on success.
	Errors  []string // User-facing messages, empty on success.
}

// OK returns a successful Result.
func OK() Result {
	return Result{Success: true}
}

// Fail returns an unsuccessful Result with the given code and messages.
func Fail(code string, messages ...string) Result {
	return Result{Success: false, Code: code, Errors: messages}
}

// FailWith builds an unsuccessful Result from a predefined application error,
// reusing its business code and message.
func FailWith(appErr domainerrors.AppError) Result {
	return Fail(appErr.ErrorCode(), appErr.Message())
}
