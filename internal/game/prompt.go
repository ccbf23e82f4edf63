package game

// PromptKind classifies the prompts shown to a player.
type PromptKind string

const (
	// PromptActivateRoom asks the Overlord to activate or pass during the
	// raid Activation phase.
	PromptActivateRoom PromptKind = "activate_room"
	// PromptEncounterAction asks the Champion to pick a weapon or retreat
	// during a raid Encounter phase.
	PromptEncounterAction PromptKind = "encounter_action"
)

// ActivateRoomAction is the Overlord's mandatory response in the raid
// Activation phase.
type ActivateRoomAction string

const (
	// ActivateRoom reveals the target room's defenders.
	ActivateRoom ActivateRoomAction = "activate"
	// PassActivation declines to activate the room.
	PassActivation ActivateRoomAction = "pass"
)

// EncounterActionKind classifies the Champion's encounter responses.
type EncounterActionKind string

const (
	// EncounterUseWeapon attempts to defeat the defender with a weapon.
	EncounterUseWeapon EncounterActionKind = "use_weapon"
	// EncounterRetreat ends the raid immediately.
	EncounterRetreat EncounterActionKind = "retreat"
)

// EncounterAction is the Champion's response during an Encounter phase.
type EncounterAction struct {
	Kind EncounterActionKind `json:"kind"`
	// Weapon is set for use_weapon actions.
	Weapon CardID `json:"weapon,omitempty"`
}

// PromptAction is a closed variant over the responses a prompt can carry:
// exactly one field is non-nil.
type PromptAction struct {
	ActivateRoom *ActivateRoomAction `json:"activate_room,omitempty"`
	Encounter    *EncounterAction    `json:"encounter,omitempty"`
}

// ActivateRoomResponse builds an activation phase response.
func ActivateRoomResponse(action ActivateRoomAction) PromptAction {
	return PromptAction{ActivateRoom: &action}
}

// UseWeaponResponse builds an encounter response defeating the defender
// with the given weapon.
func UseWeaponResponse(weapon CardID) PromptAction {
	return PromptAction{Encounter: &EncounterAction{Kind: EncounterUseWeapon, Weapon: weapon}}
}

// RetreatResponse builds an encounter response ending the raid.
func RetreatResponse() PromptAction {
	return PromptAction{Encounter: &EncounterAction{Kind: EncounterRetreat}}
}

// Equal reports whether two prompt actions describe the same response.
func (a PromptAction) Equal(other PromptAction) bool {
	switch {
	case a.ActivateRoom != nil && other.ActivateRoom != nil:
		return *a.ActivateRoom == *other.ActivateRoom
	case a.Encounter != nil && other.Encounter != nil:
		return *a.Encounter == *other.Encounter
	default:
		return false
	}
}

// Prompt is a question shown to one player along with the legal responses.
type Prompt struct {
	Kind      PromptKind     `json:"kind"`
	Responses []PromptAction `json:"responses"`
}
