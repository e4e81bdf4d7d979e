package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"match-chat-api/handler"
	"match-chat-api/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.ChatHandler
	*handler.MessageHandler
	*handler.BlockHandler
	*handler.WebSocketHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
	rc.GetWebSocketRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterUser)
	app.Post("/auth/login", rc.AuthHandler.LoginUser)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1", rc.Middleware.JWTProtected)

	app.Get("/users/me", rc.UserHandler.GetCurrentUser)
	app.Patch("/users/me", rc.UserHandler.EditUser)

	app.Get("/chats", rc.ChatHandler.GetAllChat)
	app.Get("/chats/:chatId/messages", rc.ChatHandler.GetMessagesByID)
	app.Patch("/chats/:chatId/favorite", rc.ChatHandler.ToggleFavorite)
	app.Post("/chats/:chatId/read", rc.ChatHandler.MarkRead)
	app.Get("/chats/:chatId/images/:imageId", rc.ChatHandler.GetImage)

	app.Post("/messages", rc.MessageHandler.CreateMessage)
	app.Delete("/messages", rc.MessageHandler.DeleteMessages)
	app.Get("/messages/unread", rc.MessageHandler.ListUnread)
	app.Get("/messages/updated", rc.MessageHandler.ListUpdated)
	app.Get("/messages/removed", rc.MessageHandler.ListRemoved)
	app.Patch("/messages/:messageId", rc.MessageHandler.UpdateMessage)

	app.Post("/blocks", rc.BlockHandler.Block)
	app.Get("/blocks", rc.BlockHandler.ListBlocks)
	app.Delete("/blocks/:userId", rc.BlockHandler.Unblock)
}

// GetWebSocketRoute serves /ws?token=<credential>; authentication happens inside the socket.
func (rc *ConfigRoute) GetWebSocketRoute() {
	rc.App.Use("/ws", rc.WebSocketHandler.Upgrade)
	rc.App.Get("/ws", websocket.New(rc.WebSocketHandler.HandleWebSocket))
}
