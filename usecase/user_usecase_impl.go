package usecase

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"match-chat-api/apperr"
	"match-chat-api/config/logger"
	"match-chat-api/dto"
	"match-chat-api/dto/req"
	"match-chat-api/dto/res"
	"match-chat-api/entity"
	"match-chat-api/enum"
	"match-chat-api/event"
	"match-chat-api/repository"
	"time"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	Log       *logger.AppLogger
	Publisher event.Publisher
}

func NewUserUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger, publisher event.Publisher) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, Validate: validate, DB: DB, Log: logger, Publisher: publisher}
}

func (uc *UserUsecaseImpl) GetUser(ctx context.Context, userID string) (res.UserResponse, error) {
	uc.Log.Http.Trace.Trace().
		Str("userId", userID).
		Msg("Finding user by ID")

	user, err := uc.findUser(ctx, userID)
	if err != nil {
		return res.UserResponse{}, err
	}
	return toUserResponse(&user), nil
}

func (uc *UserUsecaseImpl) EditUser(ctx context.Context, userID string, request *req.EditProfileRequest) (res.UserResponse, error) {
	uc.Log.Http.Info.Info().Str("userId", userID).Msg("EditUser started")

	if err := uc.Validate.Struct(request); err != nil {
		return res.UserResponse{}, validationError(err)
	}

	user, err := uc.findUser(ctx, userID)
	if err != nil {
		return res.UserResponse{}, err
	}

	profileChanged := false
	if request.Name != nil && *request.Name != user.Name {
		user.Name = *request.Name
		profileChanged = true
	}
	if request.Gender != nil && enum.Gender(*request.Gender) != user.Gender {
		user.Gender = enum.Gender(*request.Gender)
		profileChanged = true
	}
	if request.BirthDate != nil {
		birthDate, err := time.Parse(birthDateLayout, *request.BirthDate)
		if err != nil {
			return res.UserResponse{}, apperr.BadRequest("birthDate must be YYYY-MM-DD")
		}
		if birthDate.AddDate(MinimumAge, 0, 0).After(time.Now()) {
			return res.UserResponse{}, apperr.BadRequest(fmt.Sprintf("users must be at least %d years old", MinimumAge))
		}
		if !birthDate.Equal(user.BirthDate) {
			user.BirthDate = birthDate
			profileChanged = true
		}
	}
	avatarChanged := request.Avatar != nil && *request.Avatar != user.Avatar
	if avatarChanged {
		user.Avatar = *request.Avatar
	}

	if !profileChanged && !avatarChanged {
		return toUserResponse(&user), nil
	}

	if err := uc.UserRepository.Update(ctx, uc.DB, &user); err != nil {
		uc.Log.Http.Error.Error().Err(err).Str("userId", userID).Msg("Failed to update user")
		return res.UserResponse{}, fmt.Errorf("update user: %w", err)
	}

	response := toUserResponse(&user)

	contacts, err := uc.UserRepository.FindContactIDs(ctx, uc.DB, userID)
	if err != nil {
		// the profile is saved; partners pick it up on their next chat listing
		uc.Log.Http.Warning.Warn().Err(err).Str("userId", userID).Msg("Failed to load contacts for profile fan-out")
		return response, nil
	}

	payload := dto.ContactProfileUpdated{Action: string(enum.ProfileActionUpdate), UserID: userID, Data: response}
	if profileChanged {
		uc.Publisher.Publish(ctx, event.Event{
			Topic: event.ContactProfileUpdatedTopic,
			Data:  event.ContactProfileData{ContactIDs: contacts, Payload: payload},
		})
	}
	if avatarChanged {
		uc.Publisher.Publish(ctx, event.Event{
			Topic: event.ContactImageProfileUpdatedTopic,
			Data:  event.ContactProfileData{ContactIDs: contacts, Payload: payload},
		})
	}

	uc.Log.Http.Info.Info().
		Str("userId", userID).
		Int("contacts", len(contacts)).
		Msg("Successfully updated user")
	return response, nil
}

func (uc *UserUsecaseImpl) findUser(ctx context.Context, userID string) (entity.User, error) {
	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.Log.Http.Warning.Warn().
				Str("userId", userID).
				Msg("User not found")
			return entity.User{}, apperr.NotFound("user not found")
		}
		uc.Log.Http.Error.Error().
			Err(err).
			Str("userId", userID).
			Msg("Failed to find user")
		return entity.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
