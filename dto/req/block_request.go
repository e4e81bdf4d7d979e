package req

type BlockRequest struct {
	BlockedUserID string `json:"blockedUserId" validate:"required"`
}
