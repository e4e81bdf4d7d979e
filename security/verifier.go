package security

import (
	"fmt"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified bearer of a credential.
type Identity struct {
	UserID string
	Kind   CredentialKind
}

// IdentityVerifier turns a bearer credential into an Identity or rejects it.
type IdentityVerifier interface {
	Verify(raw string) (Identity, error)
}

// Verifier picks the verifier matching the credential kind.
type Verifier struct {
	internal *JWT
	google   *GoogleVerifier
}

func NewVerifier(internal *JWT, google *GoogleVerifier) *Verifier {
	return &Verifier{internal: internal, google: google}
}

func (v *Verifier) Verify(raw string) (Identity, error) {
	credential, err := Inspect(raw)
	if err != nil {
		return Identity{}, err
	}

	var claims jwt.MapClaims
	switch credential.Kind {
	case CredentialInternal:
		claims, err = v.internal.VerifyJwtToken(credential.Raw)
	case CredentialGoogle:
		claims, err = v.google.Verify(credential.Raw)
	default:
		return Identity{}, ErrUnsupportedIssuer
	}
	if err != nil {
		return Identity{}, fmt.Errorf("verify %s credential: %w", credential.Kind, err)
	}

	userID, err := subjectOf(claims)
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: userID, Kind: credential.Kind}, nil
}

// Keyfunc routes an already parsed but unverified token to the key of its kind.
// Used by the HTTP guard, which parses the token itself; Identify must run afterwards.
func (v *Verifier) Keyfunc(token *jwt.Token) (interface{}, error) {
	switch kindOf(token.Claims) {
	case CredentialInternal:
		return v.internal.Keyfunc(token)
	case CredentialGoogle:
		if token.Method.Alg() != jwt.SigningMethodRS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.google.Keyfunc(token)
	}
	return nil, ErrUnsupportedIssuer
}

// Identify applies the per kind claim checks to a token whose signature is valid.
func (v *Verifier) Identify(token *jwt.Token) (Identity, error) {
	if token == nil || !token.Valid {
		return Identity{}, jwt.ErrTokenSignatureInvalid
	}
	kind := kindOf(token.Claims)
	var validator *jwt.Validator
	switch kind {
	case CredentialInternal:
		validator = jwt.NewValidator(jwt.WithIssuer(InternalIssuer), jwt.WithExpirationRequired())
	case CredentialGoogle:
		validator = jwt.NewValidator(jwt.WithAudience(v.google.clientID), jwt.WithExpirationRequired())
	default:
		return Identity{}, ErrUnsupportedIssuer
	}
	if err := validator.Validate(token.Claims); err != nil {
		return Identity{}, err
	}
	userID, err := subjectOf(token.Claims)
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: userID, Kind: kind}, nil
}
