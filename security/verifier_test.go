package security

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-chat-api/config/common"
	"match-chat-api/entity"
)

const googleClientID = "client-123.apps.googleusercontent.com"

func newTestJWT(secret string) *JWT {
	v := viper.New()
	v.Set("APP_NAME", "match-chat-api")
	v.Set("JWT_SECRET", secret)
	v.Set("JWT_EXPIRATION", "1h")
	return NewJWT(&common.Config{Viper: v})
}

func newTestGoogle(t *testing.T) (*GoogleVerifier, *rsa.PrivateKey) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return NewGoogleVerifierWithKeyfunc(googleClientID, func(*jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	}), key
}

func googleToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestInspect(t *testing.T) {
	internal := newTestJWT("secret")
	token, err := internal.GenerateToken(&entity.User{BaseEntity: entity.BaseEntity{ID: "user-1"}})
	require.NoError(t, err)

	credential, err := Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, CredentialInternal, credential.Kind)

	_, err = Inspect("")
	assert.ErrorIs(t, err, ErrMissingCredential)

	_, err = Inspect("not-a-token")
	assert.ErrorIs(t, err, ErrMalformedCredential)
}

func TestVerifyInternalToken(t *testing.T) {
	internal := newTestJWT("secret")
	google, _ := newTestGoogle(t)
	verifier := NewVerifier(internal, google)

	token, err := internal.GenerateToken(&entity.User{BaseEntity: entity.BaseEntity{ID: "user-1"}})
	require.NoError(t, err)

	identity, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "user-1", Kind: CredentialInternal}, identity)

	forged, err := newTestJWT("other-secret").GenerateToken(&entity.User{BaseEntity: entity.BaseEntity{ID: "user-1"}})
	require.NoError(t, err)
	_, err = verifier.Verify(forged)
	assert.Error(t, err)
}

func TestVerifyExpiredInternalToken(t *testing.T) {
	verifier := NewVerifier(newTestJWT("secret"), &GoogleVerifier{})
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "user-1",
		"iss": InternalIssuer,
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = verifier.Verify(expired)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestVerifyGoogleToken(t *testing.T) {
	google, key := newTestGoogle(t)
	verifier := NewVerifier(newTestJWT("secret"), google)

	token := googleToken(t, key, jwt.MapClaims{
		"sub": "google-sub",
		"iss": "https://accounts.google.com",
		"aud": googleClientID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	identity, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "google-sub", Kind: CredentialGoogle}, identity)

	wrongAudience := googleToken(t, key, jwt.MapClaims{
		"sub": "google-sub",
		"iss": "accounts.google.com",
		"aud": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err = verifier.Verify(wrongAudience)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
}

func TestGoogleDisabled(t *testing.T) {
	_, key := newTestGoogle(t)
	verifier := NewVerifier(newTestJWT("secret"), &GoogleVerifier{})

	token := googleToken(t, key, jwt.MapClaims{
		"sub": "google-sub",
		"iss": "accounts.google.com",
		"aud": googleClientID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := verifier.Verify(token)
	assert.ErrorIs(t, err, ErrGoogleDisabled)
}

func TestUnknownIssuerRejected(t *testing.T) {
	verifier := NewVerifier(newTestJWT("secret"), &GoogleVerifier{})
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "user-1",
		"iss": "somebody",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrUnsupportedIssuer)
}

func TestKeyfuncAndIdentify(t *testing.T) {
	internal := newTestJWT("secret")
	verifier := NewVerifier(internal, &GoogleVerifier{})
	raw, err := internal.GenerateToken(&entity.User{BaseEntity: entity.BaseEntity{ID: "user-9"}})
	require.NoError(t, err)

	token, err := jwt.Parse(raw, verifier.Keyfunc)
	require.NoError(t, err)

	identity, err := verifier.Identify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-9", identity.UserID)
}
