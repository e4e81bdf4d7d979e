package entity

type Auth struct {
	BaseEntity
	Email    string `json:"email" gorm:"unique;type:varchar(100);not null"`
	Password string `json:"-" gorm:"type:varchar(255)"`
	User     User   `json:"-" gorm:"foreignKey:AuthID;references:ID;constraint:OnDelete:CASCADE;"`
}
