package stats

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/pkg/contracts/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixture(league, home, away, date string, hg, ag, hf, af int) domain.Match {
	return domain.Match{
		League:    league,
		HomeTeam:  home,
		AwayTeam:  away,
		Date:      day(date),
		HomeGoals: hg,
		AwayGoals: ag,
		HomeFouls: hf,
		AwayFouls: af,
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		matches []domain.Match
		team    string
		want    domain.TeamSummary
	}{
		{
			name:    "empty subset yields all zeros",
			matches: nil,
			team:    "TeamX",
			want:    domain.TeamSummary{Team: "TeamX"},
		},
		{
			name: "home and away roles combined",
			matches: []domain.Match{
				fixture("LeagueA", "TeamX", "TeamY", "2024-01-01", 2, 1, 3, 2),
				fixture("LeagueA", "TeamY", "TeamX", "2024-01-08", 0, 0, 1, 1),
			},
			team: "TeamX",
			want: domain.TeamSummary{
				Team:             "TeamX",
				TotalMatches:     2,
				Wins:             1,
				Losses:           0,
				Draws:            1,
				CleanSheets:      1,
				TotalGoals:       2,
				AvgGoalsPerMatch: 1.0,
				TotalFouls:       4,
			},
		},
		{
			name: "away clean sheet and loss",
			matches: []domain.Match{
				fixture("LeagueA", "TeamY", "TeamX", "2024-02-01", 0, 3, 5, 4),
				fixture("LeagueA", "TeamX", "TeamY", "2024-02-08", 1, 2, 2, 6),
			},
			team: "TeamX",
			want: domain.TeamSummary{
				Team:             "TeamX",
				TotalMatches:     2,
				Wins:             1,
				Losses:           1,
				Draws:            0,
				CleanSheets:      1,
				TotalGoals:       4,
				AvgGoalsPerMatch: 2.0,
				TotalFouls:       6,
			},
		},
		{
			name: "average rounds to two decimals",
			matches: []domain.Match{
				fixture("LeagueA", "TeamX", "TeamY", "2024-03-01", 1, 0, 0, 0),
				fixture("LeagueA", "TeamX", "TeamZ", "2024-03-08", 0, 0, 0, 0),
				fixture("LeagueA", "TeamW", "TeamX", "2024-03-15", 0, 1, 0, 0),
			},
			team: "TeamX",
			want: domain.TeamSummary{
				Team:             "TeamX",
				TotalMatches:     3,
				Wins:             2,
				Losses:           0,
				Draws:            1,
				CleanSheets:      3,
				TotalGoals:       2,
				AvgGoalsPerMatch: 0.67,
				TotalFouls:       0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.matches, tt.team)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarize_OutcomesSumToTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	teams := []string{"TeamX", "TeamY", "TeamZ", "TeamW"}

	matches := make([]domain.Match, 0, 200)
	for i := 0; i < 200; i++ {
		home := teams[rng.Intn(len(teams))]
		away := teams[rng.Intn(len(teams))]
		if home == away {
			continue
		}
		matches = append(matches, domain.Match{
			League:    "LeagueA",
			HomeTeam:  home,
			AwayTeam:  away,
			Date:      day("2024-01-01").AddDate(0, 0, i),
			HomeGoals: rng.Intn(6),
			AwayGoals: rng.Intn(6),
			HomeFouls: rng.Intn(20),
			AwayFouls: rng.Intn(20),
		})
	}

	for _, team := range teams {
		subset := Apply(matches, Filter{Team: team})
		s := Summarize(subset, team)
		assert.Equal(t, s.TotalMatches, s.Wins+s.Losses+s.Draws, "team %s", team)
		assert.GreaterOrEqual(t, s.Draws, 0, "team %s", team)
	}
}

func TestSummarize_OrderInvariant(t *testing.T) {
	matches := []domain.Match{
		fixture("LeagueA", "TeamX", "TeamY", "2024-01-01", 2, 1, 3, 2),
		fixture("LeagueA", "TeamY", "TeamX", "2024-01-08", 0, 0, 1, 1),
		fixture("LeagueA", "TeamX", "TeamZ", "2024-01-15", 4, 2, 7, 9),
	}
	reversed := []domain.Match{matches[2], matches[1], matches[0]}

	require.Equal(t, Summarize(matches, "TeamX"), Summarize(reversed, "TeamX"))
}

func TestGoalSplitFor(t *testing.T) {
	matches := []domain.Match{
		fixture("LeagueA", "TeamX", "TeamY", "2024-01-01", 2, 1, 0, 0),
		fixture("LeagueA", "TeamY", "TeamX", "2024-01-08", 1, 3, 0, 0),
		fixture("LeagueA", "TeamX", "TeamZ", "2024-01-15", 1, 1, 0, 0),
	}

	split := GoalSplitFor(matches, "TeamX")
	assert.Equal(t, domain.GoalSplit{Team: "TeamX", HomeGoals: 3, AwayGoals: 3}, split)
}

func TestFoulSplitFor(t *testing.T) {
	matches := []domain.Match{
		fixture("LeagueA", "TeamX", "TeamY", "2024-01-01", 0, 0, 3, 2),
		fixture("LeagueA", "TeamY", "TeamX", "2024-01-08", 0, 0, 1, 5),
	}

	split := FoulSplitFor(matches, "TeamX")
	assert.Equal(t, domain.FoulSplit{Team: "TeamX", HomeFouls: 3, AwayFouls: 5}, split)

	empty := FoulSplitFor(nil, "TeamX")
	assert.Equal(t, domain.FoulSplit{Team: "TeamX"}, empty)
}
