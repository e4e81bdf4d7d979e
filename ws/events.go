// Package ws owns live websocket connections: presence, fan-out and the connection lifecycle.
package ws

// Server to client event names.
const (
	EventChatIDs                    = "idsChats"
	EventMessage                    = "message"
	EventUpdateMessage              = "updateMessage"
	EventRemoveMessages             = "removeMessages"
	EventMessageReady               = "messageReady"
	EventListMessageRemoved         = "listMessageRemoved"
	EventListMessagesUpdated        = "listMessagesUpdated"
	EventContactProfileUpdated      = "contactProfileUpdated"
	EventContactImageProfileUpdated = "contactImageProfileUpdated"
)

// Envelope is every frame exchanged on the socket.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
