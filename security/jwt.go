package security

import (
	"github.com/golang-jwt/jwt/v5"
	"match-chat-api/config/common"
	"match-chat-api/entity"
	"time"
)

type JWT struct {
	config *common.Config
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{config: config}
}

func (j *JWT) GenerateToken(user *entity.User) (string, error) {
	secretKey := j.config.GetJwtConfig()
	expiration := j.config.GetJwtExpiration()
	if expiration <= 0 {
		expiration = time.Hour
	}

	claims := jwt.MapClaims{
		"sub": user.ID,
		"aud": j.config.GetAppConfig(),
		"iss": InternalIssuer,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(secretKey)
}

// Keyfunc resolves the HMAC secret for internal tokens.
func (j *JWT) Keyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return j.config.GetJwtConfig(), nil
}

func (j *JWT) VerifyJwtToken(token string) (jwt.MapClaims, error) {
	tokenParse, err := jwt.Parse(token, j.Keyfunc,
		jwt.WithIssuer(InternalIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := tokenParse.Claims.(jwt.MapClaims); ok && tokenParse.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

func subjectOf(claims jwt.Claims) (string, error) {
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", jwt.ErrTokenInvalidSubject
	}
	return subject, nil
}
