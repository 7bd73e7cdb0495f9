package domain

import "errors"

// Sentinel errors for data-validity failures. Each one aborts only the
// day being planned; callers wrap them with day and record context.
var (
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrMissingPrice      = errors.New("material has no price entry")
	ErrNoDepotCandidates = errors.New("no depot candidates supplied")
	ErrUnknownLevel      = errors.New("unknown optimization level")
)
