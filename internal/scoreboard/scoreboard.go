package scoreboard

import "fmt"

// Scoreboard is the registry of live matches. board is kept sorted by
// total score descending, most recently started first on equal totals;
// positions and teams index into it and are updated in the same call.
//
// A Scoreboard is not safe for concurrent use; see Service.
type Scoreboard struct {
	board     []*Match
	positions map[pairKey]int
	teams     map[string]*Match
	seq       uint64

	validateName NameValidator
}

// Option configures a Scoreboard in New.
type Option func(*Scoreboard)

// WithNameValidator replaces ValidateTeamName.
func WithNameValidator(v NameValidator) Option {
	return func(s *Scoreboard) {
		if v != nil {
			s.validateName = v
		}
	}
}

// New returns an empty Scoreboard that validates names with ValidateTeamName.
func New(opts ...Option) *Scoreboard {
	s := &Scoreboard{
		positions:    make(map[pairKey]int),
		teams:        make(map[string]*Match),
		validateName: ValidateTeamName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartNewMatch puts a new 0-0 match on the board. A team cannot play
// itself: home == away fails with ErrSameTeam instead of indexing the
// same team twice.
func (s *Scoreboard) StartNewMatch(home, away string) (*Match, error) {
	if err := s.validateName(home); err != nil {
		return nil, &ValidationError{Side: sideHome, Err: err}
	}
	if err := s.validateName(away); err != nil {
		return nil, &ValidationError{Side: sideAway, Err: err}
	}
	if home == away {
		return nil, &ValidationError{Side: sideAway, Err: ErrSameTeam}
	}
	if m, ok := s.teams[home]; ok {
		return nil, &ConflictError{Team: home, Match: m.String()}
	}
	if m, ok := s.teams[away]; ok {
		return nil, &ConflictError{Team: away, Match: m.String()}
	}

	m := newMatch(s.seq, home, away)
	s.seq++

	s.teams[home] = m
	s.teams[away] = m
	s.board = append(s.board, m)
	s.bubbleUp(len(s.board) - 1)
	return m, nil
}

// UpdateMatchScore sets both scores of the match home vs away. Neither score
// may go down; on error nothing changes.
func (s *Scoreboard) UpdateMatchScore(home, away string, homeScore, awayScore int) error {
	idx, m, err := s.lookup(home, away)
	if err != nil {
		return err
	}
	if err := validateScore(homeScore, m.home.score); err != nil {
		return &ValidationError{Side: sideHome, Err: err}
	}
	if err := validateScore(awayScore, m.away.score); err != nil {
		return &ValidationError{Side: sideAway, Err: err}
	}

	m.home.score = homeScore
	m.away.score = awayScore
	s.bubbleUp(idx)
	return nil
}

// FinishMatch removes the match home vs away. Finishing it again returns
// a NotFoundError.
func (s *Scoreboard) FinishMatch(home, away string) error {
	idx, m, err := s.lookup(home, away)
	if err != nil {
		return err
	}

	delete(s.teams, m.home.name)
	delete(s.teams, m.away.name)
	delete(s.positions, m.key())
	for i := idx + 1; i < len(s.board); i++ {
		s.positions[s.board[i].key()]--
	}

	last := len(s.board) - 1
	copy(s.board[idx:], s.board[idx+1:])
	s.board[last] = nil
	s.board = s.board[:last]
	return nil
}

// Summary returns the live matches in board order. The result is a copy.
func (s *Scoreboard) Summary() []MatchInfo {
	out := make([]MatchInfo, len(s.board))
	for i, m := range s.board {
		out[i] = m.info()
	}
	return out
}

func (s *Scoreboard) Len() int { return len(s.board) }

func (s *Scoreboard) lookup(home, away string) (int, *Match, error) {
	idx, ok := s.positions[pairKey{home: home, away: away}]
	if !ok {
		return 0, nil, &NotFoundError{Home: home, Away: away}
	}
	if idx < 0 || idx >= len(s.board) {
		panic(fmt.Sprintf("scoreboard: position %d of %s vs %s outside board of %d", idx, home, away, len(s.board)))
	}
	return idx, s.board[idx], nil
}

// bubbleUp moves the match at i toward the front until its predecessor
// ranks ahead of it. Scores never decrease, so a match never moves back.
func (s *Scoreboard) bubbleUp(i int) {
	m := s.board[i]
	for ; i > 0; i-- {
		prev := s.board[i-1]
		if !ranksAhead(m, prev) {
			break
		}
		s.board[i] = prev
		s.positions[prev.key()] = i
	}
	s.board[i] = m
	s.positions[m.key()] = i
}

// ranksAhead reports whether a comes before b on the board.
func ranksAhead(a, b *Match) bool {
	if ta, tb := a.TotalScore(), b.TotalScore(); ta != tb {
		return ta > tb
	}
	if a.seq == b.seq {
		panic(fmt.Sprintf("scoreboard: matches compare equal: (%s) and (%s)", a, b))
	}
	return a.seq > b.seq
}
