package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-chat-api/apperr"
	"match-chat-api/dto/req"
)

func registerRequest(email string) *req.RegisterRequest {
	return &req.RegisterRequest{
		Name:      "Alice",
		Email:     email,
		Password:  "s3cret!",
		BirthDate: "1995-04-12",
		Gender:    "FEMALE",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	registered, err := f.auth.RegisterUser(ctx, registerRequest("alice@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "alice@example.com", registered.Email)

	login, err := f.auth.LoginUser(ctx, &req.LoginRequest{Email: "alice@example.com", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, login.User.ID)
	assert.Equal(t, "1995-04-12", login.User.BirthDate)
	assert.Equal(t, "NATIVE", login.User.Provider)

	claims, err := f.jwt.VerifyJwtToken(login.Token)
	require.NoError(t, err)
	subject, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, registered.ID, subject)
}

func TestRegisterRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.RegisterUser(ctx, registerRequest("alice@example.com"))
	require.NoError(t, err)

	_, err = f.auth.RegisterUser(ctx, registerRequest("alice@example.com"))
	assert.ErrorIs(t, err, apperr.ErrConflict)

	minor := registerRequest("kid@example.com")
	minor.BirthDate = time.Now().AddDate(-17, 0, 0).Format("2006-01-02")
	_, err = f.auth.RegisterUser(ctx, minor)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	invalid := registerRequest("not-an-email")
	_, err = f.auth.RegisterUser(ctx, invalid)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.RegisterUser(ctx, registerRequest("alice@example.com"))
	require.NoError(t, err)

	_, err = f.auth.LoginUser(ctx, &req.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = f.auth.LoginUser(ctx, &req.LoginRequest{Email: "bob@example.com", Password: "s3cret!"})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}
