package middleware

import (
	"net/http"
	"strings"

	"parking_service/internal/domain/entities"
	"parking_service/internal/infrastructure/logging"
	"parking_service/internal/usecase"
	"parking_service/pkg"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"
	UserIDKey               = "userID"
	UserRoleKey             = "userRole"
	UserNameKey             = "userName"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed authorization header", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden)
)

type AuthMiddleware struct {
	auth usecase.IAuthUseCase
}

func NewAuthMiddleware(auth usecase.IAuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate validates the bearer token and stores the caller identity in the
// gin context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader(AuthorizationHeaderKey))
		if len(fields) != 2 || !strings.EqualFold(fields[0], AuthorizationTypeBearer) {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		identity, err := m.auth.ValidateToken(fields[1])
		if err != nil {
			logging.WithContext(c.Request.Context()).WithError(err).Warn("[http][auth] token rejected")
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(UserIDKey, identity.UserID)
		c.Set(UserRoleKey, string(identity.Role))
		c.Set(UserNameKey, identity.Name)
		c.Next()
	}
}

// AuthorizeRole must run after Authenticate.
func (m *AuthMiddleware) AuthorizeRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(UserRoleKey)
		for _, r := range roles {
			if role == string(r) {
				c.Next()
				return
			}
		}
		logging.WithFields(c.Request.Context(), map[string]interface{}{
			"user_id": c.GetString(UserIDKey),
			"role":    role,
		}).Warn("[http][auth] role not allowed")
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

// OperatorID returns the authenticated user id, or "" on public routes.
func OperatorID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
