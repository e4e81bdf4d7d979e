package entity

// Block is directed: UserID blocked BlockedUserID.
type Block struct {
	BaseEntity
	UserID        string `json:"userId" gorm:"type:varchar(255);not null;uniqueIndex:ux_block_pair,priority:1"`
	BlockedUserID string `json:"blockedUserId" gorm:"type:varchar(255);not null;index;uniqueIndex:ux_block_pair,priority:2"`

	BlockedUser *User `json:"blockedUser,omitempty" gorm:"foreignKey:BlockedUserID;references:ID"`
}
