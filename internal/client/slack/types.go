package slack

type PostMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type PostMessageResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
}
