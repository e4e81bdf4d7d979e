package usecase

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"match-chat-api/config/common"
	"match-chat-api/config/logger"
	"match-chat-api/event"
	"match-chat-api/repository"
	"match-chat-api/security"
	"match-chat-api/testutil"
)

// recordingPublisher keeps every published event. onPublish, when set, runs before recording.
type recordingPublisher struct {
	mutex     sync.Mutex
	events    []event.Event
	onPublish func(event.Event)
}

func (p *recordingPublisher) Publish(_ context.Context, e event.Event) {
	if p.onPublish != nil {
		p.onPublish(e)
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) byTopic(topic event.Topic) []event.Event {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	var matched []event.Event
	for _, e := range p.events {
		if e.Topic == topic {
			matched = append(matched, e)
		}
	}
	return matched
}

type fixture struct {
	db        *gorm.DB
	publisher *recordingPublisher
	jwt       *security.JWT
	chats     *ChatUsecaseImpl
	blocks    *BlockUsecaseImpl
	messages  *MessageUsecaseImpl
	users     UserUsecase
	auth      AuthUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	log := logrus.New()
	log.SetOutput(io.Discard)
	validate := validator.New()
	publisher := &recordingPublisher{}

	v := viper.New()
	v.Set("APP_NAME", "match-chat-api")
	v.Set("JWT_SECRET", "test-secret")
	v.Set("JWT_EXPIRATION", "1h")
	jwt := security.NewJWT(&common.Config{Viper: v})

	chatRepository := repository.NewChatRepository()
	messageRepository := repository.NewMessageRepository()
	userRepository := repository.NewUserRepository()

	chats := NewChatUsecase(chatRepository, messageRepository, log, db)
	blocks := NewBlockUsecase(repository.NewBlockRepository(), userRepository, validate, db, log)
	messages := NewMessageUsecase(messageRepository, chatRepository, userRepository, chats, blocks, validate, db, log, publisher)

	return &fixture{
		db:        db,
		publisher: publisher,
		jwt:       jwt,
		chats:     chats,
		blocks:    blocks,
		messages:  messages,
		users:     NewUserUsecase(userRepository, validate, db, logger.NewNopLogger(), publisher),
		auth:      NewAuthUsecase(repository.NewAuthRepository(), validate, db, log, jwt),
	}
}
