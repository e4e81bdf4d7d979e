package req

import "time"

type CreateMessageRequest struct {
	Text       string     `json:"text" form:"text" validate:"max=4096"`
	Type       string     `json:"type" form:"type" validate:"omitempty,oneof=TEXT IMAGE"`
	ReceiverID string     `json:"receiverId" form:"receiverId" validate:"required"`
	CreatedAt  *time.Time `json:"createdAt,omitempty" form:"createdAt"`
	ReplyToID  string     `json:"replyToId,omitempty" form:"replyToId"`
}

type UpdateMessageRequest struct {
	Text string `json:"text" validate:"required,max=4096"`
}

type DeleteMessagesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// RelayMessageRequest is the payload of the client "message" socket event.
type RelayMessageRequest struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Message     string `json:"message" validate:"required,max=4096"`
}
