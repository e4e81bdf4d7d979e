package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-chat-api/apperr"
	"match-chat-api/dto/req"
	"match-chat-api/enum"
	"match-chat-api/repository"
	"match-chat-api/security"
	"match-chat-api/testutil"
)

type stubVerifier map[string]string

func (s stubVerifier) Verify(raw string) (security.Identity, error) {
	userID, ok := s[raw]
	if !ok {
		return security.Identity{}, security.ErrMalformedCredential
	}
	return security.Identity{UserID: userID, Kind: security.CredentialInternal}, nil
}

func newSessionUsecase(f *fixture, verifier security.IdentityVerifier) *SessionUsecaseImpl {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewSessionUsecase(verifier, repository.NewUserRepository(), f.messages, f.db, log)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, f.db, "alice")
	sessions := newSessionUsecase(f, stubVerifier{"good": alice.ID, "ghost": "deleted-user"})

	userID, err := sessions.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, userID)

	for _, credential := range []string{"", "garbage", "ghost"} {
		_, err := sessions.Authenticate(ctx, credential)
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated, credential)
	}
}

func TestAuthenticateWithInternalToken(t *testing.T) {
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice")
	sessions := newSessionUsecase(f, security.NewVerifier(f.jwt, &security.GoogleVerifier{}))

	token, err := f.jwt.GenerateToken(&alice)
	require.NoError(t, err)

	userID, err := sessions.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, userID)
}

func TestCatchUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, f.db, "alice")
	bob := testutil.CreateUser(t, f.db, "bob")
	sessions := newSessionUsecase(f, stubVerifier{})

	empty, err := sessions.CatchUp(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty.UnreadChatIDs)
	assert.Empty(t, empty.UnreadChatIDs)
	assert.Empty(t, empty.RemovedMessageIDs)
	assert.Empty(t, empty.UpdatedMessages)

	edited := send(t, f, alice, bob, "v0")
	removed := send(t, f, alice, bob, "gone")

	offline, err := sessions.CatchUp(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{edited.ChatID}, offline.UnreadChatIDs)

	_, err = f.messages.UpdateMessage(ctx, edited.ID, alice.ID, &req.UpdateMessageRequest{Text: "v1"})
	require.NoError(t, err)
	require.NoError(t, f.messages.DeleteMessages(ctx, alice.ID, &req.DeleteMessagesRequest{IDs: []string{removed.ID}}, enum.DeleteModeSoft))

	catchUp, err := sessions.CatchUp(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{edited.ChatID}, catchUp.UnreadChatIDs)
	assert.Equal(t, []string{removed.ID}, catchUp.RemovedMessageIDs)
	require.Len(t, catchUp.UpdatedMessages, 1)
	assert.Equal(t, edited.ID, catchUp.UpdatedMessages[0].ID)
}
