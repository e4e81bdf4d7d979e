package enum

type ProfileAction string

const (
	ProfileActionCreate ProfileAction = "create"
	ProfileActionUpdate ProfileAction = "update"
	ProfileActionDelete ProfileAction = "delete"
)
