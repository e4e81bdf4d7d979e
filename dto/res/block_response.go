package res

import "time"

type BlockResponse struct {
	ID            string        `json:"id"`
	BlockedUserID string        `json:"blockedUserId"`
	BlockedUser   *UserResponse `json:"blockedUser,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}
