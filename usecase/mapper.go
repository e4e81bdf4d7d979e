package usecase

import (
	"match-chat-api/dto/res"
	"match-chat-api/entity"
)

const birthDateLayout = "2006-01-02"

func toUserResponse(user *entity.User) res.UserResponse {
	return res.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		BirthDate: user.BirthDate.Format(birthDateLayout),
		Gender:    string(user.Gender),
		Provider:  string(user.Provider),
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}

func toMessageResponse(message *entity.Message) res.MessageResponse {
	response := res.MessageResponse{
		ID:             message.ID,
		Text:           message.Text,
		Type:           string(message.Type),
		SenderID:       message.SenderID,
		ReceiverID:     message.ReceiverID,
		ChatID:         message.ChatID,
		IsRead:         message.IsRead,
		DeletedLocally: message.DeletedLocally,
		IsUpdate:       message.IsUpdate,
		CountUpdate:    message.CountUpdate,
		ReplyToID:      message.ReplyToID,
		CreatedAt:      message.CreatedAt,
		UpdatedAt:      message.UpdatedAt,
	}
	if message.ImageMessage != nil {
		response.ImageID = message.ImageMessage.ID
	}
	return response
}

func toMessageResponses(messages []entity.Message) []res.MessageResponse {
	responses := make([]res.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, toMessageResponse(&messages[i]))
	}
	return responses
}

func toBlockResponse(block *entity.Block) res.BlockResponse {
	response := res.BlockResponse{
		ID:            block.ID,
		BlockedUserID: block.BlockedUserID,
		CreatedAt:     block.CreatedAt,
	}
	if block.BlockedUser != nil {
		user := toUserResponse(block.BlockedUser)
		response.BlockedUser = &user
	}
	return response
}
