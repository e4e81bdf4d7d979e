package usecase

import (
	"context"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"match-chat-api/apperr"
	"match-chat-api/dto/res"
	"match-chat-api/repository"
	"match-chat-api/security"
)

type SessionUsecaseImpl struct {
	security.IdentityVerifier
	UserRepository *repository.UserRepository
	MessageUsecase MessageUsecase
	*gorm.DB
	*logrus.Logger
}

func NewSessionUsecase(verifier security.IdentityVerifier, userRepository *repository.UserRepository, messageUsecase MessageUsecase, DB *gorm.DB, logger *logrus.Logger) *SessionUsecaseImpl {
	return &SessionUsecaseImpl{IdentityVerifier: verifier, UserRepository: userRepository, MessageUsecase: messageUsecase, DB: DB, Logger: logger}
}

func (uc *SessionUsecaseImpl) Authenticate(ctx context.Context, credential string) (string, error) {
	if credential == "" {
		return "", apperr.Unauthenticated("missing credential")
	}

	identity, err := uc.IdentityVerifier.Verify(credential)
	if err != nil {
		uc.Logger.WithError(err).Debug("credential rejected")
		if errors.Is(err, security.ErrMalformedCredential) || errors.Is(err, security.ErrUnsupportedIssuer) {
			return "", apperr.Unauthenticated("malformed credential")
		}
		return "", apperr.Unauthenticated("invalid credential")
	}

	exists, err := uc.UserRepository.ExistsById(ctx, uc.DB, identity.UserID)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if !exists {
		return "", apperr.Unauthenticated("unknown user")
	}
	return identity.UserID, nil
}

func (uc *SessionUsecaseImpl) CatchUp(ctx context.Context, userID string) (res.CatchUpResponse, error) {
	var (
		catchUp res.CatchUpResponse
		err     error
	)

	if catchUp.UnreadChatIDs, err = uc.MessageUsecase.ListUnreadChatIDs(ctx, userID); err != nil {
		return res.CatchUpResponse{}, err
	}
	if catchUp.RemovedMessageIDs, err = uc.MessageUsecase.ListSoftDeleted(ctx, userID); err != nil {
		return res.CatchUpResponse{}, err
	}
	if catchUp.UpdatedMessages, err = uc.MessageUsecase.ListUpdated(ctx, userID); err != nil {
		return res.CatchUpResponse{}, err
	}
	if catchUp.UnreadChatIDs == nil {
		catchUp.UnreadChatIDs = []string{}
	}
	return catchUp, nil
}
