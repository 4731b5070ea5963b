package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CastVoteRequest struct {
	Direction string `json:"direction"`
}

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

type VoteStateResponse struct {
	Voted     bool   `json:"voted"`
	Direction string `json:"direction,omitempty"`
}

type VoteStatusResponse struct {
	PostID    string            `json:"post_id"`
	Upvotes   int               `json:"upvotes"`
	Downvotes int               `json:"downvotes"`
	Score     int               `json:"score"`
	Current   VoteStateResponse `json:"current"`
}

type CastVoteResponse struct {
	PostID  string            `json:"post_id"`
	Effect  string            `json:"effect"`
	Current VoteStateResponse `json:"current"`
}
