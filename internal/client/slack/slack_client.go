package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type SlackClient struct {
	postUrl    string
	token      string
	httpClient *http.Client
}

func NewSlackClient(postUrl, token string) *SlackClient {
	return &SlackClient{
		postUrl:    postUrl,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// PostMessage publishes text to the given channel. Slack reports application
// failures with a 200 status and ok:false, so both the HTTP status and the
// envelope are checked.
func (c *SlackClient) PostMessage(ctx context.Context, channelId, text string) error {
	reqBody := PostMessageRequest{
		Channel: channelId,
		Text:    text,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal post message request (slack): %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.postUrl, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request (slack): %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post message (slack): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error status (slack): %d", resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body (slack): %w", err)
	}

	var postResp PostMessageResponse
	if err := json.Unmarshal(responseBody, &postResp); err != nil {
		return fmt.Errorf("parse post message response (slack): %w", err)
	}

	if !postResp.Ok {
		return fmt.Errorf("Slack error: %s", postResp.Error)
	}

	return nil
}
