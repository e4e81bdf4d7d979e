package handler

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"match-chat-api/apperr"
	"match-chat-api/dto/res"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestApp renders apperr kinds like the server does and, when userID is set,
// stands in for the JWT guard.
func newTestApp(userID string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			switch {
			case errors.Is(err, apperr.ErrBadRequest):
				code = fiber.StatusBadRequest
			case errors.Is(err, apperr.ErrUnauthenticated):
				code = fiber.StatusUnauthorized
			case errors.Is(err, apperr.ErrNotFound):
				code = fiber.StatusNotFound
			}
			return ctx.Status(code).JSON(res.NewErrorResponse(code, apperr.Message(err)))
		},
	})
	if userID != "" {
		app.Use(func(ctx *fiber.Ctx) error {
			ctx.Locals(UserIDLocal, userID)
			return ctx.Next()
		})
	}
	return app
}

func do(t *testing.T, app *fiber.App, request *http.Request) (int, []byte) {
	t.Helper()
	response, err := app.Test(request)
	require.NoError(t, err)
	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, raw
}
