package serverutils

import (
	"errors"
	"fmt"
	"time"

	"noteswise-be/internal/config"
	"noteswise-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// clockSkew is the allowance on both validity boundaries for clock drift
// between the token authority and this process.
const clockSkew = 5 * time.Minute

var errInvalidToken = errors.New("invalid token")

// TokenValidator checks a bearer token's signature, issuer, audience and
// lifetime against a shared symmetric secret, and extracts the subject.
// Stateless; safe for concurrent use.
type TokenValidator struct {
	secret   []byte
	issuer   string
	audience string
	logger   logger.ILogger
}

func NewTokenValidator(cfg config.JWTConfig, log logger.ILogger) *TokenValidator {
	return &TokenValidator{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		logger:   log,
	}
}

// Validate returns the authenticated subject, or errInvalidToken. Callers
// cannot tell which check failed; the category is only logged.
func (v *TokenValidator) Validate(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithLeeway(clockSkew),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		v.logger.Warn("auth", "Token validation failed", map[string]interface{}{
			"category": categorize(err),
		})
		return uuid.Nil, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		v.logger.Warn("auth", "Token validation failed", map[string]interface{}{
			"category": "claims",
		})
		return uuid.Nil, errInvalidToken
	}

	subject := extractSubject(claims)
	userId, err := uuid.Parse(subject)
	if err != nil {
		v.logger.Warn("auth", "Token validation failed", map[string]interface{}{
			"category": "subject",
		})
		return uuid.Nil, errInvalidToken
	}

	return userId, nil
}

// extractSubject resolves the subject claim: user_id first, then sub,
// then the registered subject accessor.
func extractSubject(claims jwt.MapClaims) string {
	if v, ok := claims["user_id"].(string); ok && v != "" {
		return v
	}
	if v, ok := claims["sub"].(string); ok && v != "" {
		return v
	}
	sub, _ := claims.GetSubject()
	return sub
}

func categorize(err error) string {
	switch {
	case err == nil:
		return "unknown"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "signature"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return "issuer"
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return "audience"
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
		return "lifetime"
	default:
		return fmt.Sprintf("other: %v", err)
	}
}

// Middleware extracts the bearer token, validates it, and stores the
// subject under Locals("user_id") for the handlers downstream.
func (v *TokenValidator) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		userId, err := v.Validate(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		ctx.Locals("user_id", userId.String())
		return ctx.Next()
	}
}
