package game

import "errors"

var (
	// ErrContractViolation means a strategy returned a decision the rules do not allow.
	ErrContractViolation = errors.New("strategy contract violation")
	// ErrInvariantViolation means the hand reached a state the rules make impossible.
	ErrInvariantViolation = errors.New("hand invariant violation")
)
