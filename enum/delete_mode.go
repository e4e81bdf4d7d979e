package enum

// DeleteMode selects how DeleteMessages removes rows.
type DeleteMode string

const (
	// DeleteModeSoft hides the message from its sender only.
	DeleteModeSoft DeleteMode = "soft"
	// DeleteModeHard removes the row for both sides.
	DeleteModeHard DeleteMode = "hard"
)

func ParseDeleteMode(value string) (DeleteMode, bool) {
	switch DeleteMode(value) {
	case "", DeleteModeSoft:
		return DeleteModeSoft, true
	case DeleteModeHard:
		return DeleteModeHard, true
	}
	return "", false
}
