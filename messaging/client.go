package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAPIEndpoint  = "https://api.line.me"
	defaultDataEndpoint = "https://api-data.line.me"
)

// Client is a thin REST client for the messaging platform: replies against a
// single-use token, pushes/multicasts to user ids, and downloads message
// content (image bytes) by message id.
type Client struct {
	accessToken  string
	apiEndpoint  string
	dataEndpoint string
	httpClient   *http.Client
}

func NewClient(accessToken string) *Client {
	return &Client{
		accessToken:  accessToken,
		apiEndpoint:  defaultAPIEndpoint,
		dataEndpoint: defaultDataEndpoint,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithEndpoints is used by tests to point the client at a local server.
func NewClientWithEndpoints(accessToken, apiEndpoint, dataEndpoint string) *Client {
	c := NewClient(accessToken)
	c.apiEndpoint = apiEndpoint
	c.dataEndpoint = dataEndpoint
	return c
}

type replyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

type pushRequest struct {
	To       string    `json:"to"`
	Messages []Message `json:"messages"`
}

type multicastRequest struct {
	To       []string  `json:"to"`
	Messages []Message `json:"messages"`
}

func (c *Client) Reply(ctx context.Context, replyToken string, messages ...Message) error {
	return c.post(ctx, "/v2/bot/message/reply", replyRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	})
}

func (c *Client) Push(ctx context.Context, to string, messages ...Message) error {
	return c.post(ctx, "/v2/bot/message/push", pushRequest{
		To:       to,
		Messages: messages,
	})
}

func (c *Client) Multicast(ctx context.Context, to []string, messages ...Message) error {
	if len(to) == 0 {
		return nil
	}
	return c.post(ctx, "/v2/bot/message/multicast", multicastRequest{
		To:       to,
		Messages: messages,
	})
}

// MessageContent downloads the binary content of a media message.
func (c *Client) MessageContent(ctx context.Context, messageID string) ([]byte, error) {
	url := fmt.Sprintf("%s/v2/bot/message/%s/content", c.dataEndpoint, messageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("message content request failed with status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiEndpoint+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request to %s failed with status %d: %s", path, resp.StatusCode, string(detail))
	}

	io.Copy(io.Discard, resp.Body)
	return nil
}
