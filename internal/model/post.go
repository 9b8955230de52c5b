package model

type CreatePostRequest struct {
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	LikesNeeded int    `json:"likes_needed"`
}

type CreatePostResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type GetPostRequest struct {
	ID string `form:"id"`
}

type GetPostResponse struct {
	Post Post `json:"post"`
}

type GetListPostsRequest struct {
	UserID string `form:"user_id"`
	Status string `form:"status"`
	Offset int    `form:"offset"`
	Limit  int    `form:"limit"`
}

type GetListPostsResponse struct {
	Posts []Post `json:"posts"`
}

type ReviewPostRequest struct {
	PostID string `json:"post_id"`
	// Action is either "approve" or "reject".
	Action string `json:"action"`
}

type ReviewPostResponse struct{}
