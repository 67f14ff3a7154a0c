package config

// StateID identifies a character pose for animation selection and logic.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Walk
	Jump
	Crouch
	Celebrate
	Die
)

// StateToName maps StateID to the name used in tuning files and logs.
var StateToName = map[StateID]string{
	Idle:      "idle",
	Walk:      "walk",
	Jump:      "jump",
	Crouch:    "crouch",
	Celebrate: "celebrate",
	Die:       "die",
}

// NameToState is the inverse of StateToName.
var NameToState = map[string]StateID{}

func init() {
	for id, name := range StateToName {
		NameToState[name] = id
	}
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "none"
}

// Direction constants for character facing.
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
