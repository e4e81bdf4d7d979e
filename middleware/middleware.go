package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"match-chat-api/dto/res"
	"match-chat-api/security"
)

const (
	tokenLocal  = "jwt"
	userIDLocal = "user_id"
)

type Middleware struct {
	*security.Verifier
	Log *logrus.Logger

	guard fiber.Handler
}

func NewMiddleware(verifier *security.Verifier, logger *logrus.Logger) *Middleware {
	middleware := &Middleware{Verifier: verifier, Log: logger}
	middleware.guard = jwtware.New(jwtware.Config{
		KeyFunc:        verifier.Keyfunc,
		ContextKey:     tokenLocal,
		SuccessHandler: middleware.extractUserID,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Debug("Failed to validate JWT")
			return unauthorized(ctx, "Token is not valid")
		},
	})
	return middleware
}

// JWTProtected accepts internal and Google bearer tokens and stores the user id in the "user_id" local.
func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	return middleware.guard(c)
}

func (middleware *Middleware) extractUserID(c *fiber.Ctx) error {
	token, _ := c.Locals(tokenLocal).(*jwt.Token)
	identity, err := middleware.Verifier.Identify(token)
	if err != nil {
		middleware.Log.WithError(err).Debug("Failed to extract user ID from token")
		return unauthorized(c, "Failed to extract user ID from token")
	}

	middleware.Log.WithField("kind", identity.Kind.String()).Trace("User ID From Middleware: ", identity.UserID)
	c.Locals(userIDLocal, identity.UserID)
	return c.Next()
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(res.NewErrorResponse(fiber.StatusUnauthorized, message))
}
