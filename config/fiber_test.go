package config

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-chat-api/apperr"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{apperr.Unauthenticated("x"), fiber.StatusUnauthorized},
		{apperr.Unauthorized("x"), fiber.StatusForbidden},
		{apperr.NotFound("x"), fiber.StatusNotFound},
		{apperr.BadRequest("x"), fiber.StatusBadRequest},
		{apperr.New(apperr.ErrConflict, "x"), fiber.StatusConflict},
		{fmt.Errorf("wrapped: %w", apperr.NotFound("x")), fiber.StatusNotFound},
		{fiber.ErrUpgradeRequired, fiber.StatusUpgradeRequired},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		code, _ := statusOf(tc.err)
		assert.Equal(t, tc.code, code, tc.err.Error())
	}

	_, message := statusOf(errors.New("secret detail"))
	assert.Equal(t, "internal server error", message)
}

func TestErrorHandlerRendersErrorResponse(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(log)})
	app.Get("/missing", func(*fiber.Ctx) error { return apperr.NotFound("chat not found") })

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, response.StatusCode)

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"Not Found","statusCode":404,"error":"chat not found"}`, string(body))
}
