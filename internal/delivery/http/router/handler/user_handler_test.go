package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photodeck/internal/delivery/http/validator"
	mockusecase "photodeck/internal/mocks/usecase"
	"photodeck/internal/usecase"
)

func newUserEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestUserHandler_Register_Success(t *testing.T) {
	t.Parallel()

	uc := new(mockusecase.UserUsecase)
	handler := NewUserHandler(uc, testLogger())

	var captured *usecase.CreateUserInput
	uc.On("CreateUser", mock.Anything, mock.MatchedBy(func(input *usecase.CreateUserInput) bool {
		captured = input

		return true
	})).Return(usecase.OK(), nil)

	e := newUserEcho()
	payload := `{"userName":"alice","email":"alice@example.com","role":"User","password":"s3cretpass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, captured)
	assert.Equal(t, "alice", captured.UserName)
	assert.Equal(t, "alice@example.com", captured.Email)
	assert.Equal(t, "User", captured.Role)
	assert.Equal(t, "s3cretpass", captured.Password)
}

func TestUserHandler_Register_Conflict(t *testing.T) {
	t.Parallel()

	uc := new(mockusecase.UserUsecase)
	handler := NewUserHandler(uc, testLogger())

	uc.On("CreateUser", mock.Anything, mock.Anything).
		Return(usecase.Fail("USER_ALREADY_EXISTS", "The user already exists."), nil)

	e := newUserEcho()
	payload := `{"userName":"alice","email":"alice@example.com","role":"User","password":"s3cretpass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "The user already exists.")
}

func TestUserHandler_Register_ValidationError(t *testing.T) {
	t.Parallel()

	uc := new(mockusecase.UserUsecase)
	handler := NewUserHandler(uc, testLogger())

	e := newUserEcho()
	// Password below minimum length, invalid email.
	payload := `{"userName":"al","email":"not-an-email","role":"User","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	uc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	t.Parallel()

	uc := new(mockusecase.UserUsecase)
	handler := NewAuthHandler(uc, testLogger())

	uc.On("SignIn", mock.Anything, mock.MatchedBy(func(input *usecase.SignInInput) bool {
		return input.UserName == "alice" && input.Password == "s3cret"
	})).Return(&usecase.SignInOutput{Result: usecase.OK(), Token: "signed.jwt.token"}, nil)

	e := newUserEcho()
	payload := `{"userName":"alice","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_Login_InvalidPassword(t *testing.T) {
	t.Parallel()

	uc := new(mockusecase.UserUsecase)
	handler := NewAuthHandler(uc, testLogger())

	uc.On("SignIn", mock.Anything, mock.Anything).Return(&usecase.SignInOutput{
		Result: usecase.Fail("INVALID_PASSWORD", "Invalid password."),
	}, nil)

	e := newUserEcho()
	payload := `{"userName":"alice","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid password.")
}
