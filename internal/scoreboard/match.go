package scoreboard

import "fmt"

// Team is one side of a match. Only the Scoreboard changes the score.
type Team struct {
	name  string
	score int
}

func (t *Team) Name() string { return t.name }
func (t *Team) Score() int   { return t.score }

// Match pairs a home and an away team. seq is assigned at start and
// breaks ties between matches with the same total score.
type Match struct {
	seq  uint64
	home *Team
	away *Team
}

func newMatch(seq uint64, home, away string) *Match {
	return &Match{
		seq:  seq,
		home: &Team{name: home},
		away: &Team{name: away},
	}
}

// clone returns a copy that shares no state with m.
func (m *Match) clone() *Match {
	home, away := *m.home, *m.away
	return &Match{seq: m.seq, home: &home, away: &away}
}

func (m *Match) Seq() uint64 { return m.seq }
func (m *Match) Home() *Team { return m.home }
func (m *Match) Away() *Team { return m.away }

func (m *Match) TotalScore() int {
	return m.home.score + m.away.score
}

func (m *Match) key() pairKey {
	return pairKey{home: m.home.name, away: m.away.name}
}

func (m *Match) info() MatchInfo {
	return MatchInfo{
		HomeTeamName:  m.home.name,
		HomeTeamScore: m.home.score,
		AwayTeamName:  m.away.name,
		AwayTeamScore: m.away.score,
	}
}

func (m *Match) String() string {
	return fmt.Sprintf("seq=%d homeTeamName=%s homeTeamScore=%d awayTeamName=%s awayTeamScore=%d",
		m.seq, m.home.name, m.home.score, m.away.name, m.away.score)
}

// pairKey identifies a live match by its ordered (home, away) names.
// Swapping the sides yields a different key.
type pairKey struct {
	home string
	away string
}

// MatchInfo is one row of the summary.
type MatchInfo struct {
	HomeTeamName  string `json:"homeTeamName"`
	HomeTeamScore int    `json:"homeTeamScore"`
	AwayTeamName  string `json:"awayTeamName"`
	AwayTeamScore int    `json:"awayTeamScore"`
}
