// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"photodeck/internal/delivery/http/response"
	"photodeck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerUserRequest struct {
	UserName string  `json:"userName" validate:"required,min=3,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	FullName *string `json:"fullName"`
	Role     string  `json:"role" validate:"required"`
	Password string  `json:"password" validate:"required,min=8"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if !result.Success {
		return response.Failure(c, result)
	}

	return response.Success(c, http.StatusCreated, nil, "User registered successfully")
}
