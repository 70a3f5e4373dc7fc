package scoreboard

import "errors"

// MaxTeamNameLen is the longest accepted team name, in bytes.
const MaxTeamNameLen = 1024

var (
	ErrNameEmpty        = errors.New("team name is empty")
	ErrNameTooLong      = errors.New("team name is too long")
	ErrNameInvalidChars = errors.New("team name must contain only letters and spaces")
	ErrSameTeam         = errors.New("home and away team must differ")

	ErrScoreNegative = errors.New("score must not be negative")
	ErrScoreDecrease = errors.New("new score cannot be smaller than current score")
)

// NameValidator reports which rule a team name breaks, or nil.
type NameValidator func(name string) error

// ValidateTeamName accepts non-empty names of ASCII letters and spaces,
// at most MaxTeamNameLen long.
func ValidateTeamName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if len(name) > MaxTeamNameLen {
		return ErrNameTooLong
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == ' ' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return ErrNameInvalidChars
	}
	return nil
}

func validateScore(next, current int) error {
	if next < 0 {
		return ErrScoreNegative
	}
	if next < current {
		return ErrScoreDecrease
	}
	return nil
}
