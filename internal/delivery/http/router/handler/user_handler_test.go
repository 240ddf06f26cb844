package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/validator"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUsecase returns canned results so handler behavior can be tested in
// isolation from hashing and storage.
type stubUsecase struct {
	registerOutput *usecase.RegisterOutput
	registerErr    error
	loginOutput    *usecase.LoginOutput
	loginErr       error
}

func (s *stubUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerOutput, s.registerErr
}

func (s *stubUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOutput, s.loginErr
}

func newTestServer(uc usecase.UserUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewUserHandler(uc, logger)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/health", HealthCheck)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	createdAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	uc := &stubUsecase{
		registerOutput: &usecase.RegisterOutput{
			User: &entity.User{
				ID:           uuid.New(),
				Name:         "Test User",
				Email:        "test@example.com",
				PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",
				CreatedAt:    createdAt,
			},
		},
	}
	e := newTestServer(uc)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"test@example.com","password":"Password123!"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "test@example.com", data["email"])
	assert.Equal(t, "Test User", data["name"])
	assert.Equal(t, "2026-08-30T12:00:00Z", data["created_at"])

	// The stored hash must never appear anywhere in the response.
	assert.NotContains(t, rec.Body.String(), "argon2id")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_MalformedJSON(t *testing.T) {
	e := newTestServer(&stubUsecase{})

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	e := newTestServer(&stubUsecase{})

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Test User","password":"Password123!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_Register_Conflict(t *testing.T) {
	uc := &stubUsecase{
		registerErr: errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered"),
	}
	e := newTestServer(uc)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"taken@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_REGISTERED")
}

func TestUserHandler_Register_InternalErrorIsOpaque(t *testing.T) {
	uc := &stubUsecase{
		registerErr: domainerrors.NewDatabaseExecuteError(errors.New("pq: connection refused"), "create user"),
	}
	e := newTestServer(uc)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"test@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestUserHandler_Login_Success(t *testing.T) {
	uc := &stubUsecase{
		loginOutput: &usecase.LoginOutput{
			AccessToken: "signed.jwt.token",
			ExpiresIn:   28800,
		},
	}
	e := newTestServer(uc)

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"test@example.com","password":"Password123!"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "signed.jwt.token", data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])
	assert.Equal(t, float64(28800), data["expires_in"])
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &stubUsecase{
		loginErr: errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"),
	}
	e := newTestServer(uc)

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"test@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestUserHandler_Login_MissingFields(t *testing.T) {
	e := newTestServer(&stubUsecase{})

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"test@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(&stubUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
