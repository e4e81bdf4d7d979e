package ws

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-chat-api/apperr"
	"match-chat-api/config/logger"
	"match-chat-api/dto/res"
)

type stubSessions struct {
	users      map[string]string
	catchUp    res.CatchUpResponse
	catchUpErr error
}

func (s *stubSessions) Authenticate(_ context.Context, credential string) (string, error) {
	if userID, ok := s.users[credential]; ok {
		return userID, nil
	}
	return "", apperr.Unauthenticated("invalid credential")
}

func (s *stubSessions) CatchUp(context.Context, string) (res.CatchUpResponse, error) {
	return s.catchUp, s.catchUpErr
}

func TestConnectRejectsBadCredential(t *testing.T) {
	registry := NewRegistry()
	lifecycle := NewLifecycle(registry, &stubSessions{}, logger.NewNopLogger())
	conn := newFakeConn("c1")

	session, err := lifecycle.Connect(context.Background(), conn, "forged")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	assert.Nil(t, session)
	assert.Equal(t, 1, conn.closeCount())
	assert.Zero(t, registry.Count())
	assert.Empty(t, conn.events())
}

func TestConnectRegistersAndSendsCatchUp(t *testing.T) {
	registry := NewRegistry()
	sessions := &stubSessions{
		users: map[string]string{"token": "bob"},
		catchUp: res.CatchUpResponse{
			UnreadChatIDs:     []string{"c1"},
			RemovedMessageIDs: []string{"m2"},
			UpdatedMessages:   []res.MessageResponse{{ID: "m3"}},
		},
	}
	lifecycle := NewLifecycle(registry, sessions, logger.NewNopLogger())
	conn := newFakeConn("c1")

	session, err := lifecycle.Connect(context.Background(), conn, "token")
	require.NoError(t, err)
	assert.Equal(t, "bob", session.UserID)
	assert.Equal(t, StateActive, session.State())
	assert.True(t, registry.IsOnline("bob"))

	events := conn.events()
	require.Len(t, events, 3)
	assert.Equal(t, Envelope{Event: EventChatIDs, Data: []string{"c1"}}, events[0])
	assert.Equal(t, Envelope{Event: EventListMessageRemoved, Data: []string{"m2"}}, events[1])
	assert.Equal(t, EventListMessagesUpdated, events[2].Event)

	session.Close()
	session.Close()
	assert.Equal(t, StateClosed, session.State())
	assert.False(t, registry.IsOnline("bob"))
	assert.Equal(t, 1, conn.closeCount())
}

func TestCatchUpSkipsEmptyLists(t *testing.T) {
	sessions := &stubSessions{
		users:   map[string]string{"token": "bob"},
		catchUp: res.CatchUpResponse{UnreadChatIDs: []string{}},
	}
	lifecycle := NewLifecycle(NewRegistry(), sessions, logger.NewNopLogger())
	conn := newFakeConn("c1")

	_, err := lifecycle.Connect(context.Background(), conn, "token")
	require.NoError(t, err)

	events := conn.events()
	require.Len(t, events, 1)
	assert.Equal(t, EventChatIDs, events[0].Event)
}

func TestCatchUpFailureKeepsConnection(t *testing.T) {
	registry := NewRegistry()
	sessions := &stubSessions{
		users:      map[string]string{"token": "bob"},
		catchUpErr: errors.New("database unavailable"),
	}
	lifecycle := NewLifecycle(registry, sessions, logger.NewNopLogger())
	conn := newFakeConn("c1")

	session, err := lifecycle.Connect(context.Background(), conn, "token")
	require.NoError(t, err)
	assert.Equal(t, StateActive, session.State())
	assert.True(t, registry.IsOnline("bob"))
	assert.Empty(t, conn.events())
	assert.Zero(t, conn.closeCount())
}

func TestClosingOneDeviceKeepsOthersOnline(t *testing.T) {
	registry := NewRegistry()
	sessions := &stubSessions{users: map[string]string{"token": "bob"}, catchUp: res.CatchUpResponse{UnreadChatIDs: []string{}}}
	lifecycle := NewLifecycle(registry, sessions, logger.NewNopLogger())

	phone, err := lifecycle.Connect(context.Background(), newFakeConn("phone"), "token")
	require.NoError(t, err)
	laptop, err := lifecycle.Connect(context.Background(), newFakeConn("laptop"), "token")
	require.NoError(t, err)

	phone.Close()
	assert.True(t, registry.IsOnline("bob"))
	assert.Len(t, registry.ConnectionsFor("bob"), 1)

	laptop.Close()
	assert.False(t, registry.IsOnline("bob"))
}
