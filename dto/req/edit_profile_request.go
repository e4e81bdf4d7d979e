package req

// EditProfileRequest only touches the fields that are set.
type EditProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=255"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	BirthDate *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Avatar    *string `json:"avatar" validate:"omitempty,max=2048"`
}
