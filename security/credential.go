package security

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
)

type CredentialKind int

const (
	CredentialUnknown CredentialKind = iota
	CredentialInternal
	CredentialGoogle
)

func (k CredentialKind) String() string {
	switch k {
	case CredentialInternal:
		return "internal"
	case CredentialGoogle:
		return "google"
	}
	return "unknown"
}

const (
	InternalIssuer = "int"
)

var googleIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

var (
	ErrMissingCredential   = errors.New("credential is missing")
	ErrMalformedCredential = errors.New("credential is malformed")
	ErrUnsupportedIssuer   = errors.New("credential issuer is not supported")
)

// Credential is a bearer token tagged with its kind. The kind is derived from the
// unverified issuer claim and is only used to pick a verifier.
type Credential struct {
	Kind CredentialKind
	Raw  string
}

// Inspect decodes raw without checking its signature.
func Inspect(raw string) (Credential, error) {
	if raw == "" {
		return Credential{}, ErrMissingCredential
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Credential{}, ErrMalformedCredential
	}
	return Credential{Kind: kindOf(claims), Raw: raw}, nil
}

func kindOf(claims jwt.Claims) CredentialKind {
	issuer, err := claims.GetIssuer()
	if err != nil {
		return CredentialUnknown
	}
	if issuer == InternalIssuer {
		return CredentialInternal
	}
	if _, ok := googleIssuers[issuer]; ok {
		return CredentialGoogle
	}
	return CredentialUnknown
}
