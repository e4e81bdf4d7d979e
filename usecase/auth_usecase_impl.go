package usecase

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"match-chat-api/apperr"
	"match-chat-api/dto/req"
	"match-chat-api/dto/res"
	"match-chat-api/entity"
	"match-chat-api/enum"
	"match-chat-api/repository"
	"match-chat-api/security"
	"time"
)

// MinimumAge is the youngest age allowed to register.
const MinimumAge = 18

type AuthUsecaseImpl struct {
	*repository.AuthRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(authRepository *repository.AuthRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{AuthRepository: authRepository, Validate: validate, DB: DB, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	uc.Logger.WithField("email", request.Email).Info("login request")

	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Debug("failed to validate request")
		return res.LoginResponse{}, validationError(err)
	}

	// find by email
	currentAuth, err := uc.AuthRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.LoginResponse{}, apperr.Unauthenticated("invalid email or password")
		}
		uc.Logger.WithError(err).Error("failed to find account")
		return res.LoginResponse{}, fmt.Errorf("find account: %w", err)
	}

	// compare the password
	if err := bcrypt.CompareHashAndPassword([]byte(currentAuth.Password), []byte(request.Password)); err != nil {
		uc.Logger.WithField("email", request.Email).Warn("password mismatch")
		return res.LoginResponse{}, apperr.Unauthenticated("invalid email or password")
	}

	// generate token
	token, err := uc.JWT.GenerateToken(&currentAuth.User)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to generate token")
		return res.LoginResponse{}, fmt.Errorf("generate token: %w", err)
	}

	return res.LoginResponse{
		Token: token,
		User:  toUserResponse(&currentAuth.User),
	}, nil
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Debug("failed to validate request")
		return res.RegisterResponse{}, validationError(err)
	}
	birthDate, err := time.Parse(birthDateLayout, request.BirthDate)
	if err != nil {
		return res.RegisterResponse{}, apperr.BadRequest("birthDate must be YYYY-MM-DD")
	}
	if birthDate.AddDate(MinimumAge, 0, 0).After(time.Now()) {
		return res.RegisterResponse{}, apperr.BadRequest(fmt.Sprintf("users must be at least %d years old", MinimumAge))
	}

	if _, err := uc.AuthRepository.FindByEmail(ctx, uc.DB, request.Email); err == nil {
		return res.RegisterResponse{}, apperr.New(apperr.ErrConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return res.RegisterResponse{}, fmt.Errorf("find account: %w", err)
	}

	hashPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return res.RegisterResponse{}, fmt.Errorf("hash password: %w", err)
	}

	// start transaction
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	newAuth := &entity.Auth{
		Email:    request.Email,
		Password: string(hashPassword),
		User: entity.User{
			Name:      request.Name,
			BirthDate: birthDate,
			Gender:    enum.Gender(request.Gender),
			Provider:  enum.ProviderNative,
		},
	}

	// save auth and user together
	if err := uc.AuthRepository.Save(ctx, trx, newAuth); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return res.RegisterResponse{}, apperr.New(apperr.ErrConflict, "email already registered")
		}
		uc.Logger.WithError(err).Error("failed to save account")
		return res.RegisterResponse{}, fmt.Errorf("save account: %w", err)
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Error("failed to commit account")
		return res.RegisterResponse{}, fmt.Errorf("commit account: %w", err)
	}

	uc.Logger.WithField("userId", newAuth.User.ID).Info("user registered")
	return res.RegisterResponse{
		ID:    newAuth.User.ID,
		Name:  newAuth.User.Name,
		Email: newAuth.Email,
	}, nil
}
