package model

type ProcessEngagementRequest struct {
	PostID string `json:"post_id"`
	// Action is one of "like", "comment", "share".
	Action string `json:"action"`
}

type ProcessEngagementResponse struct {
	// Success is false for the idempotent no-op case: the caller already
	// performed this action on this post. That is not an error.
	Success       bool   `json:"success"`
	PointsAwarded int64  `json:"points_awarded"`
	Message       string `json:"message"`
}
