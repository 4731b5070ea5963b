package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SubmitPostRequest struct {
	Topic string `json:"topic"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Image string `json:"image,omitempty"`
}

type PostResponse struct {
	PostID    string `json:"post_id"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	Image     string `json:"image,omitempty"`
	ChannelID string `json:"channel_id"`
	Topic     string `json:"topic,omitempty"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

type SubmitPostResponse struct {
	Post           PostResponse `json:"post"`
	ChannelCreated bool         `json:"channel_created"`
}

type ChannelResponse struct {
	ChannelID string `json:"channel_id"`
	Topic     string `json:"topic"`
	CreatedAt string `json:"created_at"`
}

type FeedResponse struct {
	Posts []PostResponse `json:"posts"`
}
