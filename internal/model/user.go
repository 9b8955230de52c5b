package model

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RegisterResponse struct {
	ID          string `json:"id"`
	AccessToken string `json:"access_token"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}

type GetUserStatsRequest struct{}

type GetUserStatsResponse struct {
	TotalPosts        int64  `json:"total_posts"`
	ApprovedPosts     int64  `json:"approved_posts"`
	TotalInteractions int64  `json:"total_interactions"`
	Points            int64  `json:"points"`
	Rank              int64  `json:"rank"`
	IsPremium         bool   `json:"is_premium"`
	JoinDate          string `json:"join_date"`
}

type GetPointsHistoryRequest struct {
	Offset int `form:"offset"`
	Limit  int `form:"limit"`
}

type GetPointsHistoryResponse struct {
	History []PointsHistory `json:"history"`
}

type ClaimDailyBonusRequest struct{}

type ClaimDailyBonusResponse struct {
	Awarded       bool   `json:"awarded"`
	PointsAwarded int64  `json:"points_awarded"`
	Message       string `json:"message"`
}
