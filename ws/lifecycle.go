package ws

import (
	"context"
	"sync"
	"sync/atomic"

	"match-chat-api/config/logger"
	"match-chat-api/usecase"
)

type State int32

const (
	StateConnecting State = iota
	StateAuthenticated
	StateActive
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAuthenticated:
		return "authenticated"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Lifecycle admits connections: authenticate, register, catch up. Sessions undo the registration on close.
type Lifecycle struct {
	registry *Registry
	sessions usecase.SessionUsecase
	log      *logger.AppLogger
}

func NewLifecycle(registry *Registry, sessions usecase.SessionUsecase, log *logger.AppLogger) *Lifecycle {
	return &Lifecycle{registry: registry, sessions: sessions, log: log}
}

type Session struct {
	UserID string

	conn      Conn
	registry  *Registry
	log       *logger.AppLogger
	state     atomic.Int32
	closeOnce sync.Once
}

func (s *Session) State() State {
	return State(s.state.Load())
}

// Close deregisters the connection and closes it. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.state.Store(int32(StateClosed))
		if s.UserID != "" {
			s.registry.Deregister(s.UserID, s.conn)
		}
		_ = s.conn.Close()
		s.log.WS.Info.Info().
			Str("userId", s.UserID).
			Str("connId", s.conn.ID()).
			Msg("connection closed")
	})
}

// Connect authenticates credential for conn. On failure conn is closed and the error returned.
func (l *Lifecycle) Connect(ctx context.Context, conn Conn, credential string) (*Session, error) {
	session := &Session{conn: conn, registry: l.registry, log: l.log}
	session.state.Store(int32(StateConnecting))

	userID, err := l.sessions.Authenticate(ctx, credential)
	if err != nil {
		l.log.WS.Warning.Warn().Err(err).Str("connId", conn.ID()).Msg("connection rejected")
		session.Close()
		return nil, err
	}
	session.UserID = userID
	session.state.Store(int32(StateAuthenticated))

	l.registry.Register(userID, conn)
	session.state.Store(int32(StateActive))
	l.log.WS.Info.Info().
		Str("userId", userID).
		Str("connId", conn.ID()).
		Int("onlineUsers", l.registry.Count()).
		Msg("connection active")

	l.catchUp(ctx, session)
	return session, nil
}

func (l *Lifecycle) catchUp(ctx context.Context, session *Session) {
	catchUp, err := l.sessions.CatchUp(ctx, session.UserID)
	if err != nil {
		l.log.WS.Error.Error().Err(err).Str("userId", session.UserID).Msg("catch-up query failed")
		return
	}

	emit := func(name string, data interface{}) {
		if err := session.conn.Emit(name, data); err != nil {
			l.log.WS.Warning.Warn().Err(err).Str("userId", session.UserID).Str("event", name).Msg("catch-up emit failed")
		}
	}
	emit(EventChatIDs, catchUp.UnreadChatIDs)
	if len(catchUp.RemovedMessageIDs) > 0 {
		emit(EventListMessageRemoved, catchUp.RemovedMessageIDs)
	}
	if len(catchUp.UpdatedMessages) > 0 {
		emit(EventListMessagesUpdated, catchUp.UpdatedMessages)
	}
}
