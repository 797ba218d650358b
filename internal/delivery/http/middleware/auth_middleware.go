package middleware

import (
	"strings"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// keyUserID is the echo.Context key carrying the authenticated subject's ID.
	keyUserID = "userID"

	// keyAccount is the echo.Context key carrying the authenticated account.
	keyAccount = "account"

	bearerPrefix = "Bearer "
)

// AuthMiddleware guards routes behind a bearer access token. Every guarded
// request resolves the token's subject to a live account, so a deleted or
// deactivated account is locked out as soon as persistence says so, not when
// its tokens expire.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the access token and attaches the account to the context.
// Failure modes are deliberate: a missing or malformed header is NO_TOKEN, an
// expired token is TOKEN_EXPIRED, everything else is TOKEN_INVALID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrNoToken
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if tokenString == "" || strings.ContainsRune(tokenString, ' ') {
			return domainerrors.ErrNoToken
		}

		claims, err := m.tokenSvc.Verify(tokenString, service.PurposeAccess)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired
			}

			return domainerrors.ErrTokenInvalid
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrTokenInvalid
			}

			return errors.Wrap(err, "failed to load account for authentication")
		}

		if !user.IsActive {
			return domainerrors.ErrTokenInvalid
		}

		c.Set(keyUserID, user.ID)
		c.Set(keyAccount, user)

		return next(c)
	}
}

// RequireAdmin gates administrative routes. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := AccountFrom(c)
		if !ok {
			return domainerrors.ErrForbidden
		}

		if !user.CanAdminister() {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// UserIDFrom returns the authenticated subject's ID from the request context.
func UserIDFrom(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyUserID).(uuid.UUID)

	return id, ok
}

// AccountFrom returns the authenticated account from the request context.
func AccountFrom(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keyAccount).(*entity.User)

	return user, ok
}
