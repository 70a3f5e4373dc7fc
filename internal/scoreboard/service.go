package scoreboard

import (
	"errors"
	"log/slog"
	"sync"
)

// Board is the scoreboard API. *Scoreboard and *Service both implement it.
type Board interface {
	StartNewMatch(home, away string) (*Match, error)
	UpdateMatchScore(home, away string, homeScore, awayScore int) error
	FinishMatch(home, away string) error
	Summary() []MatchInfo
	Len() int
}

var (
	_ Board = (*Scoreboard)(nil)
	_ Board = (*Service)(nil)
)

// Service serializes all calls to one Scoreboard behind a single mutex and
// logs every operation.
type Service struct {
	mu    sync.Mutex
	board *Scoreboard
	log   *slog.Logger
}

// NewService guards board with a mutex. A nil board starts empty; a nil
// log falls back to slog.Default.
func NewService(board *Scoreboard, log *slog.Logger) *Service {
	if board == nil {
		board = New()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{board: board, log: log}
}

// StartNewMatch returns a detached copy of the new match: later score
// updates are visible only through Summary.
func (s *Service) StartNewMatch(home, away string) (*Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.board.StartNewMatch(home, away)
	if err != nil {
		s.reject("start match", err, "home", home, "away", away)
		return nil, err
	}
	s.log.Debug("match started", "home", home, "away", away, "seq", m.Seq(), "live", s.board.Len())
	return m.clone(), nil
}

func (s *Service) UpdateMatchScore(home, away string, homeScore, awayScore int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.board.UpdateMatchScore(home, away, homeScore, awayScore); err != nil {
		s.reject("update score", err, "home", home, "away", away, "home_score", homeScore, "away_score", awayScore)
		return err
	}
	s.log.Debug("score updated", "home", home, "away", away, "home_score", homeScore, "away_score", awayScore)
	return nil
}

func (s *Service) FinishMatch(home, away string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.board.FinishMatch(home, away); err != nil {
		s.reject("finish match", err, "home", home, "away", away)
		return err
	}
	s.log.Debug("match finished", "home", home, "away", away, "live", s.board.Len())
	return nil
}

func (s *Service) Summary() []MatchInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Summary()
}

func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Len()
}

func (s *Service) reject(op string, err error, attrs ...any) {
	attrs = append(attrs, "kind", errorKind(err), "err", err)
	s.log.Warn(op+" rejected", attrs...)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "unknown"
	}
}
