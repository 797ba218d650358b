package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/domain/service"
	mockrepository "fittrack/internal/mocks/repository"
	mockservice "fittrack/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockservice.MockTokenService
	userRepo   *mockrepository.MockUserRepository
}

func newAuthMiddlewareFixtures(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, userRepo),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
	}
}

func newAuthTestContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func activeAccount(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:       id,
		Email:    "jane@example.com",
		Role:     entity.RoleUser,
		IsActive: true,
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	fx := newAuthMiddlewareFixtures(t)

	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		t.Fatal("handler should not run without a token")
		return nil
	})

	err := handler(newAuthTestContext(""))
	assert.ErrorIs(t, err, domainerrors.ErrNoToken)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	fx := newAuthMiddlewareFixtures(t)

	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		t.Fatal("handler should not run without a token")
		return nil
	})

	for _, header := range []string{"Basic abc", "Bearer", "Bearer ", "Bearer a b"} {
		err := handler(newAuthTestContext(header))
		assert.ErrorIs(t, err, domainerrors.ErrNoToken, "header %q", header)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	fx := newAuthMiddlewareFixtures(t)

	fx.tokenSvc.EXPECT().Verify("stale", service.PurposeAccess).
		Return(nil, service.ErrTokenExpired)

	handler := fx.middleware.Authenticate(func(c echo.Context) error { return nil })

	err := handler(newAuthTestContext("Bearer stale"))
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAuthenticate_WrongPurposeIsInvalid(t *testing.T) {
	fx := newAuthMiddlewareFixtures(t)

	fx.tokenSvc.EXPECT().Verify("refresh-token", service.PurposeAccess).
		Return(nil, service.ErrTokenInvalid)

	handler := fx.middleware.Authenticate(func(c echo.Context) error { return nil })

	err := handler(newAuthTestContext("Bearer refresh-token"))
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthenticate_UnknownAccountIsInvalid(t *testing.T) {
	fx := newAuthMiddlewareFixtures(t)
	userID := uuid.New()

	fx.tokenSvc.EXPECT().Verify("orphan", service.PurposeAccess).
		Return(&service.Claims{UserID: userID, Purpose: service.PurposeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	handler := fx.middleware.Authenticate(func(c echo.Context) error { return nil })

	err := handler(newAuthTestContext("Bearer orphan"))
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthenticate_InactiveAccountIsInvalid(t *testing.T) {
	fx := newAuthMiddlewareFixtures(t)
	userID := uuid.New()
	user := activeAccount(userID)
	user.IsActive = false

	fx.tokenSvc.EXPECT().Verify("deactivated", service.PurposeAccess).
		Return(&service.Claims{UserID: userID, Purpose: service.PurposeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	handler := fx.middleware.Authenticate(func(c echo.Context) error { return nil })

	err := handler(newAuthTestContext("Bearer deactivated"))
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthenticate_SuccessAttachesAccount(t *testing.T) {
	fx := newAuthMiddlewareFixtures(t)
	userID := uuid.New()
	user := activeAccount(userID)

	fx.tokenSvc.EXPECT().Verify("good", service.PurposeAccess).
		Return(&service.Claims{UserID: userID, Purpose: service.PurposeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	var handlerRan bool
	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		handlerRan = true

		gotID, ok := UserIDFrom(c)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)

		gotUser, ok := AccountFrom(c)
		require.True(t, ok)
		assert.Equal(t, user, gotUser)

		return nil
	})

	err := handler(newAuthTestContext("Bearer good"))
	require.NoError(t, err)
	assert.True(t, handlerRan)
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	fx := newAuthMiddlewareFixtures(t)

	c := newAuthTestContext("")
	c.Set(keyAccount, activeAccount(uuid.New()))

	handler := fx.middleware.RequireAdmin(func(c echo.Context) error { return nil })

	err := handler(c)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequireAdmin_RejectsSuspendedAdmin(t *testing.T) {
	fx := newAuthMiddlewareFixtures(t)

	admin := activeAccount(uuid.New())
	admin.Role = entity.RoleAdmin
	admin.IsSuspended = true

	c := newAuthTestContext("")
	c.Set(keyAccount, admin)

	handler := fx.middleware.RequireAdmin(func(c echo.Context) error { return nil })

	err := handler(c)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	fx := newAuthMiddlewareFixtures(t)

	admin := activeAccount(uuid.New())
	admin.Role = entity.RoleAdmin

	c := newAuthTestContext("")
	c.Set(keyAccount, admin)

	var handlerRan bool
	handler := fx.middleware.RequireAdmin(func(c echo.Context) error {
		handlerRan = true
		return nil
	})

	err := handler(c)
	require.NoError(t, err)
	assert.True(t, handlerRan)
}
