package usecase

import (
	"context"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to register a new user.
type CreateUserInput struct {
	UserName string
	Email    string
	FullName *string
	Role     string
	Password string
}

// SignInInput defines the data required for a user to sign in. UserName is
// matched against both the login name and the email, exactly as given.
type SignInInput struct {
	UserName string
	Password string
}

// --- Output DTOs ---

// SignInOutput returns the issued token after a successful sign-in.
type SignInOutput struct {
	Result
	Token string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (Result, error)
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
}
