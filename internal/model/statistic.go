package model

type GetLeaderboardRequest struct {
	Offset int `form:"offset"`
	Limit  int `form:"limit"`
}

type GetLeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

type RefreshLeaderboardRequest struct{}

type RefreshLeaderboardResponse struct{}
