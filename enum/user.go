package enum

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type Provider string

const (
	ProviderNative Provider = "NATIVE"
	ProviderGoogle Provider = "GOOGLE"
)
