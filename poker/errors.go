package poker

import "errors"

var (
	// ErrInvalidCard is returned for suits or ranks outside the standard deck
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidHandSize is returned when hole cards are not exactly two
	// cards or a hand would grow past five cards.
	ErrInvalidHandSize = errors.New("invalid hand size")

	// ErrPreconditionViolation is returned when a hand is classified
	// without exactly five cards.
	ErrPreconditionViolation = errors.New("precondition violation")
)
