package usecase

import (
	"context"
	"match-chat-api/dto/res"
)

// SessionUsecase backs the websocket handshake.
type SessionUsecase interface {
	// Authenticate verifies credential and returns the id of an existing user.
	Authenticate(ctx context.Context, credential string) (string, error)
	// CatchUp collects the state a user missed while offline.
	CatchUp(ctx context.Context, userID string) (res.CatchUpResponse, error)
}
