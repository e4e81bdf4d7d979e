package res

import "time"

type ChatResponse struct {
	ChatID          string           `json:"chatId"`
	Fav             bool             `json:"fav"`
	Partner         *UserResponse    `json:"partner,omitempty"`
	LastMessage     *MessageResponse `json:"lastMessage,omitempty"`
	UnreadCount     int64            `json:"unreadCount"`
	LastMessageDate *time.Time       `json:"lastMessageDate,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}
