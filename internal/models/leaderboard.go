package models

// LeaderboardEntry represents a user's position on the streak leaderboard
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Streak   int    `json:"streak"`
}
