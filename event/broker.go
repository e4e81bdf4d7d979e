// Package event decouples state changes from their delivery. Usecases publish
// explicit domain events after a commit; the websocket notifier subscribes.
package event

import (
	"context"
	"sync"

	"match-chat-api/dto"
	"match-chat-api/dto/res"
)

type Topic string

const (
	MessageCreatedTopic             Topic = "message.created"
	MessageUpdatedTopic             Topic = "message.updated"
	MessagesRemovedTopic            Topic = "messages.removed"
	MessagesReadTopic               Topic = "messages.read"
	MessageRelayedTopic             Topic = "message.relayed"
	ContactProfileUpdatedTopic      Topic = "contact.profile.updated"
	ContactImageProfileUpdatedTopic Topic = "contact.image.updated"
)

var AllTopics = [...]Topic{
	MessageCreatedTopic,
	MessageUpdatedTopic,
	MessagesRemovedTopic,
	MessagesReadTopic,
	MessageRelayedTopic,
	ContactProfileUpdatedTopic,
	ContactImageProfileUpdatedTopic,
}

type Event struct {
	Topic Topic
	Data  interface{}
}

type MessageCreatedData struct {
	ReceiverID string
	Message    res.MessageResponse
}

type MessageUpdatedData struct {
	ReceiverID string
	Message    res.MessageResponse
}

type MessagesRemovedData struct {
	ReceiverID string
	Payload    dto.RemoveMessages
}

type MessagesReadData struct {
	// NotifyUserIDs are the chat participants other than the reader.
	NotifyUserIDs []string
	Payload       dto.MessageReady
}

type MessageRelayedData struct {
	RecipientID string
	Payload     dto.RelayedMessage
}

type ContactProfileData struct {
	ContactIDs []string
	Payload    dto.ContactProfileUpdated
}

type Handler func(ctx context.Context, event Event)

type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Broker delivers every event synchronously to the handlers of its topic, in
// subscription order. Handlers must not block.
type Broker struct {
	mutex    sync.RWMutex
	handlers map[Topic][]Handler
}

func NewBroker() *Broker {
	return &Broker{handlers: make(map[Topic][]Handler)}
}

// Subscribe registers handler for topics, or for every topic when none is given.
func (b *Broker) Subscribe(handler Handler, topics ...Topic) {
	if len(topics) == 0 {
		topics = AllTopics[:]
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for _, topic := range topics {
		b.handlers[topic] = append(b.handlers[topic], handler)
	}
}

func (b *Broker) Publish(ctx context.Context, event Event) {
	b.mutex.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Topic]...)
	b.mutex.RUnlock()

	for _, handler := range handlers {
		handler(ctx, event)
	}
}
