package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/clubhub/club-service/pkg/util"
)

const claimsKey = "auth_claims"

// Gate enforces bearer-token authentication and per-route permission
// requirements. Routes registered without a Gate handler are open and never
// inspect the token.
type Gate struct {
	tokens *TokenIssuer
}

// NewGate constructs the authorization gate.
func NewGate(tokens *TokenIssuer) *Gate {
	return &Gate{tokens: tokens}
}

// Authenticate verifies the bearer token and stashes its claims for handlers.
func (g *Gate) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := g.authenticate(c)
		if err != nil {
			return err
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// Require authenticates and then demands a single resource.action permission
// from the token's embedded snapshot.
func (g *Gate) Require(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := g.authenticate(c)
		if err != nil {
			return err
		}
		if !hasPermission(claims.Permissions, permission) {
			return apperrors.NewInsufficientPermission(permission)
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

func (g *Gate) authenticate(c *fiber.Ctx) (*AccessClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, apperrors.NewMissingToken()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.NewMissingToken()
	}

	claims, err := g.tokens.ParseAccessToken(parts[1])
	if err != nil {
		return nil, apperrors.NewInvalidToken()
	}
	return claims, nil
}

func hasPermission(granted []string, required string) bool {
	for _, p := range granted {
		if p == required {
			return true
		}
	}
	return false
}

// ClaimsFromContext retrieves the authenticated token claims.
func ClaimsFromContext(c *fiber.Ctx) (*AccessClaims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*AccessClaims)
	return claims, ok
}
