package domain

import (
	"time"
)

// Match represents a single fixture between two named teams on a given date.
// Records are read-only after the dataset load; nothing mutates a Match.
type Match struct {
	League    string    `json:"league" validate:"required"`
	HomeTeam  string    `json:"home_team" validate:"required"`
	AwayTeam  string    `json:"away_team" validate:"required"`
	Date      time.Time `json:"date"`
	HomeGoals int       `json:"home_goals" validate:"min=0"`
	AwayGoals int       `json:"away_goals" validate:"min=0"`
	HomeFouls int       `json:"home_fouls" validate:"min=0"`
	AwayFouls int       `json:"away_fouls" validate:"min=0"`
}

// Involves reports whether the team appears in this match in either role.
func (m Match) Involves(team string) bool {
	return m.HomeTeam == team || m.AwayTeam == team
}

// IsDirect reports whether this match is a direct fixture between the two
// teams, in either home/away order.
func (m Match) IsDirect(team1, team2 string) bool {
	return (m.HomeTeam == team1 && m.AwayTeam == team2) ||
		(m.HomeTeam == team2 && m.AwayTeam == team1)
}

// GoalsFor returns the goals scored by the team in this match.
// Returns 0 when the team did not play.
func (m Match) GoalsFor(team string) int {
	switch team {
	case m.HomeTeam:
		return m.HomeGoals
	case m.AwayTeam:
		return m.AwayGoals
	}
	return 0
}

// GoalsAgainst returns the goals conceded by the team in this match.
func (m Match) GoalsAgainst(team string) int {
	switch team {
	case m.HomeTeam:
		return m.AwayGoals
	case m.AwayTeam:
		return m.HomeGoals
	}
	return 0
}

// FoulsBy returns the fouls committed by the team in this match.
func (m Match) FoulsBy(team string) int {
	switch team {
	case m.HomeTeam:
		return m.HomeFouls
	case m.AwayTeam:
		return m.AwayFouls
	}
	return 0
}

// IsDraw reports whether the match ended level.
func (m Match) IsDraw() bool {
	return m.HomeGoals == m.AwayGoals
}

// WonBy reports whether the team won this match.
func (m Match) WonBy(team string) bool {
	switch team {
	case m.HomeTeam:
		return m.HomeGoals > m.AwayGoals
	case m.AwayTeam:
		return m.AwayGoals > m.HomeGoals
	}
	return false
}
