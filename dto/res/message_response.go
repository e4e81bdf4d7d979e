package res

import "time"

// MessageResponse is the full message record sent over HTTP and socket events.
// Image bytes are never part of it, only the image id.
type MessageResponse struct {
	ID             string    `json:"id"`
	Text           *string   `json:"text"`
	Type           string    `json:"type"`
	SenderID       string    `json:"senderId"`
	ReceiverID     string    `json:"receiverId"`
	ChatID         string    `json:"chatId"`
	IsRead         bool      `json:"isRead"`
	DeletedLocally bool      `json:"deletedLocally"`
	IsUpdate       bool      `json:"isUpdate"`
	CountUpdate    int       `json:"countUpdate"`
	ReplyToID      *string   `json:"replyToId,omitempty"`
	ImageID        string    `json:"imageId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CatchUpResponse is the state a client missed while offline.
type CatchUpResponse struct {
	UnreadChatIDs     []string          `json:"idsChats"`
	RemovedMessageIDs []string          `json:"listMessageRemoved"`
	UpdatedMessages   []MessageResponse `json:"listMessagesUpdated"`
}
