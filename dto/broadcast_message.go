package dto

// Payloads of the server to client socket events that are not a plain message record.

type RemoveMessages struct {
	IDs    []string `json:"ids"`
	UserID string   `json:"userId"`
}

type MessageReady struct {
	ChatID string `json:"chatId"`
	UserID string `json:"userId"`
}

// RelayedMessage is an ephemeral message forwarded between two live clients.
type RelayedMessage struct {
	Message  string `json:"message"`
	SenderID string `json:"senderId"`
}

type ContactProfileUpdated struct {
	Action string      `json:"action"`
	UserID string      `json:"userId"`
	Data   interface{} `json:"data"`
}
