package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeInsufficientMana    = "INSUFFICIENT_MANA"
	CodeInsufficientActions = "INSUFFICIENT_ACTIONS"
	CodeCardNotFound        = "CARD_NOT_FOUND"
	CodeCardNotInDeck       = "CARD_NOT_IN_DECK"
	CodeUnknownCardName     = "UNKNOWN_CARD_NAME"
	CodeAbilityNotFound     = "ABILITY_NOT_FOUND"
	CodeDuplicateCardName   = "DUPLICATE_CARD_NAME"
	CodePromptAlreadyActive = "PROMPT_ALREADY_ACTIVE"
	CodeRaidAlreadyActive   = "RAID_ALREADY_ACTIVE"
	CodeRaidNotActive       = "RAID_NOT_ACTIVE"
	CodeRaidWrongPhase      = "RAID_WRONG_PHASE"
	CodeRaidWrongSide       = "RAID_WRONG_SIDE"
	CodeRaidInvalidAction   = "RAID_INVALID_ACTION"
	CodeRaidNoEncounter     = "RAID_NO_ENCOUNTER"
	CodeActionNotAllowed    = "ACTION_NOT_ALLOWED"
	CodeNotFound            = "NOT_FOUND"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeStorage             = "STORAGE_FAILURE"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Resource errors
		CodeInsufficientMana:    "Not enough mana for this action",
		CodeInsufficientActions: "Not enough action points for this action",

		// Card errors
		CodeCardNotFound:      "Card not found",
		CodeCardNotInDeck:     "No card available in the deck",
		CodeUnknownCardName:   "Unknown card name {{.Name}}",
		CodeAbilityNotFound:   "Ability not found",
		CodeDuplicateCardName: "Card name {{.Name}} is already registered",

		// Prompt errors
		CodePromptAlreadyActive: "A prompt is already being shown",

		// Raid errors
		CodeRaidAlreadyActive: "A raid is already in progress",
		CodeRaidNotActive:     "No raid is in progress",
		CodeRaidWrongPhase:    "This action is not available in the current raid phase",
		CodeRaidWrongSide:     "It is not your turn to act in this raid",
		CodeRaidInvalidAction: "Invalid raid action",
		CodeRaidNoEncounter:   "No defender is currently being encountered",

		// Action errors
		CodeActionNotAllowed: "This action cannot be taken right now",

		// Storage errors
		CodeNotFound:     "Record not found",
		CodeGameNotFound: "Game not found",
		CodeStorage:      "A storage error occurred",
	},
}
