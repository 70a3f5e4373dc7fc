package scoreboard

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the Scoreboard matches exactly one
// of these with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("team already playing")
	ErrNotFound   = errors.New("match not found")
)

const (
	sideHome = "home team"
	sideAway = "away team"
)

// ValidationError is returned for a malformed team name or a rejected score.
// Side is "home team" or "away team"; Err is the rule that failed.
type ValidationError struct {
	Side string
	Err  error
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrScoreNegative) || errors.Is(e.Err, ErrScoreDecrease) {
		return fmt.Sprintf("score of %s is invalid: %v", e.Side, e.Err)
	}
	return fmt.Sprintf("team name of %s is invalid: %v", e.Side, e.Err)
}

func (e *ValidationError) Unwrap() []error { return []error{ErrValidation, e.Err} }

// ConflictError is returned when a team is already in a live match.
type ConflictError struct {
	Team  string
	Match string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("team=%s is already playing a match=(%s)", e.Team, e.Match)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NotFoundError is returned when no live match has exactly this home/away pairing.
type NotFoundError struct {
	Home string
	Away string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("match between homeTeam=%s and awayTeam=%s does not exist on the scoreboard", e.Home, e.Away)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
