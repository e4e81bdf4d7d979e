package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"match-chat-api/config/common"
	"match-chat-api/config/logger"
	"match-chat-api/event"
	"match-chat-api/handler"
	"match-chat-api/middleware"
	"match-chat-api/repository"
	"match-chat-api/routes"
	"match-chat-api/security"
	"match-chat-api/usecase"
	"match-chat-api/ws"
)

type AppConfig struct {
	*fiber.App
	*common.Config
	*validator.Validate
	*logrus.Logger
	AppLogger *logger.AppLogger
	*DBConfig
	*security.JWT
	*security.Verifier
	*middleware.Middleware
}

func RunServer() {
	newConfig := common.NewViper()
	log := NewLogger(newConfig)
	appLogger := logger.NewLogger(newConfig.GetLogDir(), newConfig.GetLogLevel())
	app := NewFiber(newConfig, log)
	newDB := NewDB(newConfig, appLogger)
	defer newDB.Close()
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newVerifier := security.NewVerifier(newJWT, security.NewGoogleVerifier(newConfig, log))
	newMiddleware := middleware.NewMiddleware(newVerifier, log)

	app.Use(recover.New())
	// middleware CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: newConfig.GetCorsOrigins(),
		AllowMethods: "GET,POST,PATCH,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Config:     newConfig,
		Validate:   newValidator,
		Logger:     log,
		AppLogger:  appLogger,
		DBConfig:   newDB,
		JWT:        newJWT,
		Verifier:   newVerifier,
		Middleware: newMiddleware,
	})

	if err := app.Listen(newConfig.GetListenAddress()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	db := aC.GetDB()

	newAuthRepository := repository.NewAuthRepository()
	newUserRepository := repository.NewUserRepository()
	newChatRepository := repository.NewChatRepository()
	newMessageRepository := repository.NewMessageRepository()
	newBlockRepository := repository.NewBlockRepository()

	// fan-out: usecases publish, the notifier pushes to live sockets
	broker := event.NewBroker()
	registry := ws.NewRegistry()
	ws.NewNotifier(registry, aC.AppLogger).Subscribe(broker)

	newAuthUsecase := usecase.NewAuthUsecase(newAuthRepository, aC.Validate, db, aC.Logger, aC.JWT)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.Validate, db, aC.AppLogger, broker)
	newChatUsecase := usecase.NewChatUsecase(newChatRepository, newMessageRepository, aC.Logger, db)
	newBlockUsecase := usecase.NewBlockUsecase(newBlockRepository, newUserRepository, aC.Validate, db, aC.Logger)
	newMessageUsecase := usecase.NewMessageUsecase(newMessageRepository, newChatRepository, newUserRepository, newChatUsecase, newBlockUsecase, aC.Validate, db, aC.Logger, broker)
	newSessionUsecase := usecase.NewSessionUsecase(aC.Verifier, newUserRepository, newMessageUsecase, db, aC.Logger)

	pingInterval, pongWait := aC.Config.GetWebSocketConfig()
	lifecycle := ws.NewLifecycle(registry, newSessionUsecase, aC.AppLogger)

	route := routes.ConfigRoute{
		App:              aC.App,
		Middleware:       aC.Middleware,
		AuthHandler:      handler.NewAuthHandler(newAuthUsecase, aC.Logger),
		UserHandler:      handler.NewUserHandler(newUserUsecase, aC.Logger),
		ChatHandler:      handler.NewChatHandler(newChatUsecase, newMessageUsecase, aC.Logger),
		MessageHandler:   handler.NewMessageHandler(newMessageUsecase, aC.Logger),
		BlockHandler:     handler.NewBlockHandler(newBlockUsecase, aC.Logger),
		WebSocketHandler: handler.NewWebSocketHandler(lifecycle, newMessageUsecase, aC.AppLogger, pingInterval, pongWait),
	}
	route.GetRoute()
}
