package perf

import (
	"strings"

	"github.com/google/uuid"
)

// Digits map onto letters past 'f', keeping the mapping one to one.
var digitsToLetters = strings.NewReplacer(
	"-", " ",
	"0", "g", "1", "h", "2", "i", "3", "j", "4", "k",
	"5", "l", "6", "m", "7", "n", "8", "o", "9", "p",
)

// TeamName returns a random name made of letters and spaces.
func TeamName() string {
	return digitsToLetters.Replace(uuid.NewString())
}
