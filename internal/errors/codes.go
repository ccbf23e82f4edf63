// Package errors provides structured error handling for the rules engine.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Resource errors
	CodeInsufficientMana    Code = "INSUFFICIENT_MANA"
	CodeInsufficientActions Code = "INSUFFICIENT_ACTIONS"

	// Card errors
	CodeCardNotFound    Code = "CARD_NOT_FOUND"
	CodeCardNotInDeck   Code = "CARD_NOT_IN_DECK"
	CodeUnknownCardName Code = "UNKNOWN_CARD_NAME"
	CodeAbilityNotFound Code = "ABILITY_NOT_FOUND"

	// Registry errors
	CodeDuplicateCardName Code = "DUPLICATE_CARD_NAME"

	// Prompt errors
	CodePromptAlreadyActive Code = "PROMPT_ALREADY_ACTIVE"

	// Raid errors
	CodeRaidAlreadyActive Code = "RAID_ALREADY_ACTIVE"
	CodeRaidNotActive     Code = "RAID_NOT_ACTIVE"
	CodeRaidWrongPhase    Code = "RAID_WRONG_PHASE"
	CodeRaidWrongSide     Code = "RAID_WRONG_SIDE"
	CodeRaidInvalidAction Code = "RAID_INVALID_ACTION"
	CodeRaidNoEncounter   Code = "RAID_NO_ENCOUNTER"

	// Action errors
	CodeActionNotAllowed Code = "ACTION_NOT_ALLOWED"

	// Storage errors
	CodeNotFound     Code = "NOT_FOUND"
	CodeGameNotFound Code = "GAME_NOT_FOUND"
	CodeStorage      Code = "STORAGE_FAILURE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - caller usage errors, bad input
	case CodeCardNotInDeck,
		CodeUnknownCardName,
		CodeDuplicateCardName,
		CodeRaidWrongPhase,
		CodeRaidWrongSide,
		CodeRaidInvalidAction:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeInsufficientMana,
		CodeInsufficientActions,
		CodePromptAlreadyActive,
		CodeRaidAlreadyActive,
		CodeRaidNotActive,
		CodeRaidNoEncounter,
		CodeActionNotAllowed:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeGameNotFound,
		CodeCardNotFound,
		CodeAbilityNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
