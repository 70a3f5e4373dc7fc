// Command demo plays a fixed set of matches on a scoreboard and prints the
// resulting summary as JSON.
package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"example.com/scoreboard/internal/scoreboard"
)

type result struct {
	home, away           string
	homeScore, awayScore int
}

var fixtures = []result{
	{"Mexico", "Canada", 0, 5},
	{"Spain", "Brazil", 10, 2},
	{"Germany", "France", 2, 2},
	{"Uruguay", "Italy", 6, 6},
	{"Argentina", "Australia", 3, 1},
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	board := scoreboard.NewService(scoreboard.New(), log)

	for _, f := range fixtures {
		if _, err := board.StartNewMatch(f.home, f.away); err != nil {
			log.Error("start match", "err", err)
			os.Exit(1)
		}
	}
	for _, f := range fixtures {
		if err := board.UpdateMatchScore(f.home, f.away, f.homeScore, f.awayScore); err != nil {
			log.Error("update score", "err", err)
			os.Exit(1)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(board.Summary()); err != nil {
		log.Error("encode summary", "err", err)
		os.Exit(1)
	}
}
