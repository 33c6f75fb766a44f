package domain

// TeamSummary holds the derived statistics for one team over a match subset.
// It is recomputed on every request and never persisted.
type TeamSummary struct {
	Team             string  `json:"team"`
	TotalMatches     int     `json:"total_matches"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	Draws            int     `json:"draws"`
	CleanSheets      int     `json:"clean_sheets"`
	TotalGoals       int     `json:"total_goals"`
	AvgGoalsPerMatch float64 `json:"avg_goals_per_match"`
	TotalFouls       int     `json:"total_fouls"`
}

// HeadToHead holds win/draw/loss counts for direct fixtures between two teams.
type HeadToHead struct {
	Team1        string `json:"team1"`
	Team2        string `json:"team2"`
	TotalMatches int    `json:"total_matches"`
	Team1Wins    int    `json:"team1_wins"`
	Team2Wins    int    `json:"team2_wins"`
	Draws        int    `json:"draws"`
	Team1Losses  int    `json:"team1_losses"`
	Team2Losses  int    `json:"team2_losses"`
}

// TeamGoals is one entry in the top-scorers ranking: a team and its combined
// home plus away goal total within the selected league and date window.
type TeamGoals struct {
	Team       string `json:"team"`
	TotalGoals int    `json:"total_goals"`
}

// GoalSplit is the home/away goal breakdown for one team, used by the
// goals bar chart.
type GoalSplit struct {
	Team      string `json:"team"`
	HomeGoals int    `json:"home_goals"`
	AwayGoals int    `json:"away_goals"`
}

// FoulSplit is the home/away foul breakdown for one team, used by the
// fouls pie chart.
type FoulSplit struct {
	Team      string `json:"team"`
	HomeFouls int    `json:"home_fouls"`
	AwayFouls int    `json:"away_fouls"`
}
