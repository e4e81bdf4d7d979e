package usecase

import (
	"context"
	"match-chat-api/dto/req"
	"match-chat-api/dto/res"
)

type UserUsecase interface {
	GetUser(ctx context.Context, userID string) (res.UserResponse, error)
	EditUser(ctx context.Context, userID string, request *req.EditProfileRequest) (res.UserResponse, error)
}
