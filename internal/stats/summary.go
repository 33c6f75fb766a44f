package stats

import (
	"math"

	"matchday/pkg/contracts/domain"
)

// Summarize computes the statistics summary for one team over a match
// subset. The subset is expected to already be restricted to that team and
// the requested date range; records not involving the team contribute only
// to the match count, mirroring the dashboard's filter semantics.
//
// The scan accumulates goals, fouls, wins, losses, and clean sheets in a
// single pass; draws are derived from the totals rather than counted. An
// empty subset yields an all-zero summary with a guarded average of 0.
func Summarize(matches []domain.Match, team string) domain.TeamSummary {
	s := domain.TeamSummary{Team: team, TotalMatches: len(matches)}

	for _, m := range matches {
		switch team {
		case m.HomeTeam:
			s.TotalGoals += m.HomeGoals
			s.TotalFouls += m.HomeFouls
			if m.HomeGoals > m.AwayGoals {
				s.Wins++
			} else if m.HomeGoals < m.AwayGoals {
				s.Losses++
			}
			if m.AwayGoals == 0 {
				s.CleanSheets++
			}
		case m.AwayTeam:
			s.TotalGoals += m.AwayGoals
			s.TotalFouls += m.AwayFouls
			if m.AwayGoals > m.HomeGoals {
				s.Wins++
			} else if m.AwayGoals < m.HomeGoals {
				s.Losses++
			}
			if m.HomeGoals == 0 {
				s.CleanSheets++
			}
		}
	}

	s.Draws = s.TotalMatches - s.Wins - s.Losses
	if s.TotalMatches > 0 {
		s.AvgGoalsPerMatch = round2(float64(s.TotalGoals) / float64(s.TotalMatches))
	}
	return s
}

// GoalSplitFor returns the team's home/away goal totals over the subset.
func GoalSplitFor(matches []domain.Match, team string) domain.GoalSplit {
	split := domain.GoalSplit{Team: team}
	for _, m := range matches {
		switch team {
		case m.HomeTeam:
			split.HomeGoals += m.HomeGoals
		case m.AwayTeam:
			split.AwayGoals += m.AwayGoals
		}
	}
	return split
}

// FoulSplitFor returns the team's home/away foul totals over the subset.
func FoulSplitFor(matches []domain.Match, team string) domain.FoulSplit {
	split := domain.FoulSplit{Team: team}
	for _, m := range matches {
		switch team {
		case m.HomeTeam:
			split.HomeFouls += m.HomeFouls
		case m.AwayTeam:
			split.AwayFouls += m.AwayFouls
		}
	}
	return split
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
