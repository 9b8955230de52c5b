package model

// AccessToken is the object embedded into the jwt access token.
type AccessToken struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Points    int64  `json:"points"`
	IsPremium bool   `json:"is_premium"`
	Role      string `json:"role"`
	JoinedAt  string `json:"joined_at"`
}

type Post struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Platform      string `json:"platform"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	LikesReceived int    `json:"likes_received"`
	LikesNeeded   int    `json:"likes_needed"`
	PointsEarned  int64  `json:"points_earned"`
	CreatedAt     string `json:"created_at"`
	ApprovedAt    string `json:"approved_at,omitempty"`
}

type PointsHistory struct {
	ID          string `json:"id"`
	Points      int64  `json:"points"`
	ActionKind  string `json:"action_kind"`
	Description string `json:"description"`
	PostID      string `json:"post_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type LeaderboardEntry struct {
	User User `json:"user"`
	Rank int  `json:"rank"`
}
