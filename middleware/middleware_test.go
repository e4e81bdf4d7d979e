package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-chat-api/config/common"
	"match-chat-api/entity"
	"match-chat-api/security"
)

func newTestApp(t *testing.T) (*fiber.App, *security.JWT) {
	t.Helper()

	v := viper.New()
	v.Set("APP_NAME", "match-chat-api")
	v.Set("JWT_SECRET", "middleware-secret")
	v.Set("JWT_EXPIRATION", "1h")
	internal := security.NewJWT(&common.Config{Viper: v})

	log := logrus.New()
	log.SetOutput(io.Discard)
	middleware := NewMiddleware(security.NewVerifier(internal, &security.GoogleVerifier{}), log)

	app := fiber.New()
	app.Get("/me", middleware.JWTProtected, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app, internal
}

func call(t *testing.T, app *fiber.App, token string) (int, string) {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	response, err := app.Test(request)
	require.NoError(t, err)
	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, string(body)
}

func TestJWTProtectedAcceptsInternalToken(t *testing.T) {
	app, internal := newTestApp(t)
	token, err := internal.GenerateToken(&entity.User{BaseEntity: entity.BaseEntity{ID: "user-1"}})
	require.NoError(t, err)

	status, body := call(t, app, token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user-1", body)
}

func TestJWTProtectedRejects(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := call(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "user-1",
		"iss": security.InternalIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	status, _ = call(t, app, forged)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "user-1",
		"iss": security.InternalIssuer,
	}).SignedString([]byte("middleware-secret"))
	require.NoError(t, err)
	status, _ = call(t, app, noExpiry)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
