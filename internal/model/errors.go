package model

import "errors"

var (
	// ErrKeyNotFound is returned by a Ledger when the key has no value.
	ErrKeyNotFound = errors.New("ledger key not found")
	// ErrNotFound is returned when a record id has no decodable value.
	ErrNotFound = errors.New("record not found")
	// ErrValidation is returned when caller-supplied fields violate
	// required-field rules.
	ErrValidation = errors.New("validation failed")
	// ErrNotOwner is returned when the acting identity does not own the
	// record. Identity is client-asserted, so this is a capability
	// check, not a security boundary.
	ErrNotOwner = errors.New("actor does not own record")
	// ErrInvalidState is returned on a transition attempt from a
	// terminal state.
	ErrInvalidState = errors.New("record is not pending")
	// ErrDecode marks a malformed ledger payload.
	ErrDecode = errors.New("malformed payload")
	// ErrRecommendationFailed is returned when the recommendation
	// engine fails; the record stays pending.
	ErrRecommendationFailed = errors.New("recommendation generation failed")
)
