// Package stats implements the match filtering and aggregation routines
// behind the dashboard: per-team summaries, head-to-head comparison, and
// the top-scorers ranking. All functions are pure and total: they never
// fail, and an empty input subset yields zero-valued results.
package stats

import (
	"sort"
	"time"

	"matchday/pkg/contracts/domain"
)

// Filter is an immutable description of the user's current selections.
// A zero field means "no restriction on that dimension". Filters are built
// once per request and threaded through the aggregation functions; there is
// no ambient filter state.
type Filter struct {
	League string
	Team   string
	From   time.Time
	To     time.Time
}

// WithTeam returns a copy of the filter restricted to the given team.
func (f Filter) WithTeam(team string) Filter {
	f.Team = team
	return f
}

// Match reports whether the fixture passes every restriction of the filter.
// Date bounds are inclusive.
func (f Filter) Match(m domain.Match) bool {
	if f.League != "" && m.League != f.League {
		return false
	}
	if f.Team != "" && !m.Involves(f.Team) {
		return false
	}
	if !f.From.IsZero() && m.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && m.Date.After(f.To) {
		return false
	}
	return true
}

// Apply returns the subset of matches passing the filter, preserving order.
func Apply(matches []domain.Match, f Filter) []domain.Match {
	out := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// DirectFixtures returns the subset of matches played between the two teams,
// in either home/away order, within the filter's league and date bounds.
func DirectFixtures(matches []domain.Match, f Filter, team1, team2 string) []domain.Match {
	scope := f
	scope.Team = ""
	out := make([]domain.Match, 0)
	for _, m := range matches {
		if scope.Match(m) && m.IsDirect(team1, team2) {
			out = append(out, m)
		}
	}
	return out
}

// Leagues returns the distinct league names, sorted.
func Leagues(matches []domain.Match) []string {
	return distinct(matches, func(m domain.Match) []string {
		return []string{m.League}
	})
}

// Teams returns the distinct team names of a league (home and away roles
// combined), sorted. An empty league returns teams across all leagues.
func Teams(matches []domain.Match, league string) []string {
	return distinct(matches, func(m domain.Match) []string {
		if league != "" && m.League != league {
			return nil
		}
		return []string{m.HomeTeam, m.AwayTeam}
	})
}

// DateBounds returns the earliest and latest fixture dates in the dataset.
// Both are zero when the dataset is empty.
func DateBounds(matches []domain.Match) (earliest, latest time.Time) {
	for _, m := range matches {
		if earliest.IsZero() || m.Date.Before(earliest) {
			earliest = m.Date
		}
		if latest.IsZero() || m.Date.After(latest) {
			latest = m.Date
		}
	}
	return earliest, latest
}

func distinct(matches []domain.Match, pick func(domain.Match) []string) []string {
	seen := make(map[string]struct{})
	for _, m := range matches {
		for _, name := range pick(m) {
			if name != "" {
				seen[name] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
