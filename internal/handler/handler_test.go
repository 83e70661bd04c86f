package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio/internal/auth"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) SeedAdmin(ctx context.Context, email, password string) (*model.Admin, bool, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Admin), args.Bool(1), args.Error(2)
}

func (m *MockAuthService) SeedEnabled() bool {
	return m.Called().Bool(0)
}

type structValidator struct {
	v *validator.Validate
}

func (s *structValidator) Validate(i interface{}) error {
	return s.v.Struct(i)
}

func newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	v := validator.New()
	_ = auth.RegisterValidations(v)
	e.Validator = &structValidator{v: v}
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireHTTPError(t *testing.T, err error, status int, code string) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, status, he.Code)
	resp, ok := he.Message.(apperrors.ErrorResponse)
	require.True(t, ok, "message is %T", he.Message)
	assert.Equal(t, code, resp.Code)
	return he
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockAuthService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"email":"a@x.com","password":"secret1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "a@x.com", "secret1").Return("signed.jwt.token", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"a@x.com","password":"secret1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "a@x.com", "secret1").Return("", apperrors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name: "misconfigured secret",
			body: `{"email":"a@x.com","password":"secret1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "a@x.com", "secret1").Return("", apperrors.ErrSecretMisconfigured)
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:       "multi-byte password too long for bcrypt",
			body:       `{"email":"a@x.com","password":"` + strings.Repeat("é", 40) + `"}`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "password too long for bcrypt",
			body:       `{"email":"a@x.com","password":"` + strings.Repeat("p", 73) + `"}`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			tt.setupMock(svc)
			c, rec := newContext(http.MethodPost, tt.body)

			err := NewAuthHandler(svc).Login(c)

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, rec.Code)
				assert.JSONEq(t, `{"token":"signed.jwt.token"}`, rec.Body.String())
			} else {
				requireHTTPError(t, err, tt.wantStatus, tt.wantCode)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_InternalCauseIsKept(t *testing.T) {
	svc := new(MockAuthService)
	cause := errors.New("connection refused")
	svc.On("Login", mock.Anything, "a@x.com", "secret1").Return("", cause)
	c, _ := newContext(http.MethodPost, `{"email":"a@x.com","password":"secret1"}`)

	he := requireHTTPError(t, NewAuthHandler(svc).Login(c), http.StatusInternalServerError, "INTERNAL_ERROR")
	assert.ErrorIs(t, he.Internal, cause)
	assert.NotContains(t, he.Message.(apperrors.ErrorResponse).Error, "connection refused")
}

func TestAuthHandler_Me(t *testing.T) {
	svc := auth.NewJWTService("test-secret-0123456789")
	token, err := svc.GenerateToken("admin-1", "a@x.com")
	require.NoError(t, err)
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	c, rec := newContext(http.MethodGet, "")
	c.SetRequest(c.Request().WithContext(auth.WithClaims(c.Request().Context(), claims)))

	require.NoError(t, NewAuthHandler(new(MockAuthService)).Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"admin-1"`)
	assert.Contains(t, rec.Body.String(), `"expires_at"`)

	c, _ = newContext(http.MethodGet, "")
	requireHTTPError(t, NewAuthHandler(new(MockAuthService)).Me(c), http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestSeedHandler_SeedAdmin(t *testing.T) {
	t.Run("gate checked before body", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("SeedEnabled").Return(false)
		c, _ := newContext(http.MethodPost, `not json`)

		requireHTTPError(t, NewSeedHandler(svc).SeedAdmin(c), http.StatusForbidden, "SEED_DISABLED")
		svc.AssertNotCalled(t, "SeedAdmin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("created", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("SeedEnabled").Return(true)
		svc.On("SeedAdmin", mock.Anything, "a@x.com", "secret1").
			Return(&model.Admin{ID: "admin-1", Email: "a@x.com", PasswordHash: "hash"}, true, nil)
		c, rec := newContext(http.MethodPost, `{"email":"a@x.com","password":"secret1"}`)

		require.NoError(t, NewSeedHandler(svc).SeedAdmin(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true,"id":"admin-1","email":"a@x.com","created":true}`, rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("invalid body while enabled", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("SeedEnabled").Return(true)
		c, _ := newContext(http.MethodPost, `{"email":"a@x.com","password":"123"}`)

		requireHTTPError(t, NewSeedHandler(svc).SeedAdmin(c), http.StatusBadRequest, "VALIDATION_ERROR")
		svc.AssertNotCalled(t, "SeedAdmin", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHealthHandler(t *testing.T) {
	c, rec := newContext(http.MethodGet, "")

	require.NoError(t, NewHealthHandler().Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}
