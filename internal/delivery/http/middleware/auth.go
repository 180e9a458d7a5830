package middleware

import (
	"slices"
	"strings"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/delivery/http/response"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// accessTokenParam carries the token on websocket upgrades, where browsers
// cannot set an Authorization header.
const accessTokenParam = "access_token"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller's identity on
// the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing or malformed")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		userID, err := claims.UserID()
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}

		deliverycontext.SetUser(c, userID, claims.Roles)

		return next(c)
	}
}

// RequireRole allows the request when the caller holds any of roles.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles).ToStrings()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := deliverycontext.GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.ContainsFunc(held, func(role string) bool { return slices.Contains(allowed, role) }) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: requires role "+strings.Join(allowed, " or "))
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	const prefix = "Bearer "

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header != "" {
		token, found := strings.CutPrefix(header, prefix)

		return token, found && token != ""
	}

	if c.IsWebSocket() {
		token := c.QueryParam(accessTokenParam)

		return token, token != ""
	}

	return "", false
}
