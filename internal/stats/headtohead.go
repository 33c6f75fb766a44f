package stats

import (
	"matchday/pkg/contracts/domain"
)

// HeadToHead counts wins, draws, and losses across the direct fixtures
// between two teams. The input is expected to already be restricted to
// those fixtures (see DirectFixtures); any record not between the two teams
// is skipped defensively so the counts stay consistent.
//
// Losses are derived per side as total - ownWins - draws, so
// team1Wins + team2Wins + draws always equals the total.
func HeadToHead(matches []domain.Match, team1, team2 string) domain.HeadToHead {
	h := domain.HeadToHead{Team1: team1, Team2: team2}

	for _, m := range matches {
		if !m.IsDirect(team1, team2) {
			continue
		}
		h.TotalMatches++
		switch {
		case m.IsDraw():
			h.Draws++
		case m.WonBy(team1):
			h.Team1Wins++
		case m.WonBy(team2):
			h.Team2Wins++
		}
	}

	h.Team1Losses = h.TotalMatches - h.Team1Wins - h.Draws
	h.Team2Losses = h.TotalMatches - h.Team2Wins - h.Draws
	return h
}
