package ws

import (
	"context"

	"match-chat-api/config/logger"
	"match-chat-api/event"
)

// Notifier pushes events to every live connection of a user. Delivery is best effort:
// failures are logged and never reach the caller.
type Notifier struct {
	registry *Registry
	log      *logger.AppLogger
}

func NewNotifier(registry *Registry, log *logger.AppLogger) *Notifier {
	return &Notifier{registry: registry, log: log}
}

// Push emits to each connection of userID. A connection whose emit fails is closed.
// Emit only queues, so a stalled peer never holds up the publisher.
func (n *Notifier) Push(userID, name string, payload interface{}) {
	if !n.registry.IsOnline(userID) {
		n.log.WS.Trace.Trace().Str("userId", userID).Str("event", name).Msg("user offline, event dropped")
		return
	}

	for _, conn := range n.registry.ConnectionsFor(userID) {
		if err := conn.Emit(name, payload); err != nil {
			n.log.WS.Warning.Warn().
				Err(err).
				Str("userId", userID).
				Str("connId", conn.ID()).
				Str("event", name).
				Msg("emit failed, closing connection")
			_ = conn.Close()
		}
	}
}

// Subscribe attaches the notifier to every topic of broker.
func (n *Notifier) Subscribe(broker *event.Broker) {
	broker.Subscribe(n.Handle)
}

func (n *Notifier) Handle(_ context.Context, e event.Event) {
	switch data := e.Data.(type) {
	case event.MessageCreatedData:
		n.Push(data.ReceiverID, EventMessage, data.Message)
	case event.MessageUpdatedData:
		n.Push(data.ReceiverID, EventUpdateMessage, data.Message)
	case event.MessagesRemovedData:
		n.Push(data.ReceiverID, EventRemoveMessages, data.Payload)
	case event.MessagesReadData:
		for _, userID := range data.NotifyUserIDs {
			n.Push(userID, EventMessageReady, data.Payload)
		}
	case event.MessageRelayedData:
		n.Push(data.RecipientID, EventMessage, data.Payload)
	case event.ContactProfileData:
		name := EventContactProfileUpdated
		if e.Topic == event.ContactImageProfileUpdatedTopic {
			name = EventContactImageProfileUpdated
		}
		for _, userID := range data.ContactIDs {
			n.Push(userID, name, data.Payload)
		}
	default:
		n.log.WS.Warning.Warn().Str("topic", string(e.Topic)).Msg("unhandled event")
	}
}
