package security

import (
	"errors"
	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"match-chat-api/config/common"
	"time"
)

var ErrGoogleDisabled = errors.New("google credentials are not configured")

// GoogleVerifier checks Google ID tokens against Google's published signing keys.
type GoogleVerifier struct {
	clientID string
	keyfunc  jwt.Keyfunc
}

// NewGoogleVerifier fetches the JWKS once and keeps it refreshed in the background.
// A verifier without client id, or whose first fetch failed, rejects every token.
func NewGoogleVerifier(config *common.Config, log *logrus.Logger) *GoogleVerifier {
	clientID, jwksURL := config.GetGoogleConfig()
	if clientID == "" {
		log.Warn("GOOGLE_CLIENT_ID is empty, google credentials are disabled")
		return &GoogleVerifier{}
	}

	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			log.WithError(err).Warn("Failed to refresh google JWKS")
		},
	})
	if err != nil {
		log.WithError(err).Error("Failed to load google JWKS, google credentials are disabled")
		return &GoogleVerifier{clientID: clientID}
	}
	return NewGoogleVerifierWithKeyfunc(clientID, jwks.Keyfunc)
}

func NewGoogleVerifierWithKeyfunc(clientID string, keyfunc jwt.Keyfunc) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID, keyfunc: keyfunc}
}

func (g *GoogleVerifier) Keyfunc(token *jwt.Token) (interface{}, error) {
	if g.keyfunc == nil {
		return nil, ErrGoogleDisabled
	}
	return g.keyfunc(token)
}

func (g *GoogleVerifier) parserOptions() []jwt.ParserOption {
	return []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(g.clientID),
		jwt.WithExpirationRequired(),
	}
}

func (g *GoogleVerifier) Verify(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, g.Keyfunc, g.parserOptions()...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid || kindOf(claims) != CredentialGoogle {
		return nil, jwt.ErrTokenInvalidIssuer
	}
	return claims, nil
}
