package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflict")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	ErrTeamNotFound        = fmt.Errorf("%w: team", ErrNotFound)
	ErrDuplicateMembership = fmt.Errorf("%w: team is already in this bracket", ErrConflict)
	ErrAlreadyScheduled    = fmt.Errorf("%w: match already has a schedule", ErrConflict)
)
