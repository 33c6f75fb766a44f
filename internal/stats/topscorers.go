package stats

import (
	"sort"

	"matchday/pkg/contracts/domain"
)

// DefaultTopScorersLimit is the ranking size shown on the dashboard.
const DefaultTopScorersLimit = 6

// TopScorers ranks teams by combined home plus away goals over the subset,
// which is expected to already be restricted to one league and date range.
// Home goals are grouped by home team, away goals by away team, and the two
// groupings are union-summed per team name.
//
// The ranking is descending by total goals; teams with equal totals are
// ordered by name so the result is deterministic. At most limit entries are
// returned; limit <= 0 falls back to DefaultTopScorersLimit.
func TopScorers(matches []domain.Match, limit int) []domain.TeamGoals {
	if limit <= 0 {
		limit = DefaultTopScorersLimit
	}

	totals := make(map[string]int)
	for _, m := range matches {
		totals[m.HomeTeam] += m.HomeGoals
		totals[m.AwayTeam] += m.AwayGoals
	}

	ranking := make([]domain.TeamGoals, 0, len(totals))
	for team, goals := range totals {
		ranking = append(ranking, domain.TeamGoals{Team: team, TotalGoals: goals})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].TotalGoals != ranking[j].TotalGoals {
			return ranking[i].TotalGoals > ranking[j].TotalGoals
		}
		return ranking[i].Team < ranking[j].Team
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
