package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client calls a named-entity recognizer sidecar over HTTP. The
// category allow-list is applied on the response.
type Client struct {
	url  string
	http *http.Client
}

var _ Recognizer = (*Client)(nil)

func NewClient(url string) *Client {
	return &Client{url: url, http: &http.Client{}}
}

func (c *Client) Recognize(ctx context.Context, sentence string) ([]Span, error) {
	body, err := json.Marshal(map[string]string{"sentence": sentence})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ner request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ner service returned %s", resp.Status)
	}

	var spans []Span
	if err := json.NewDecoder(resp.Body).Decode(&spans); err != nil {
		return nil, fmt.Errorf("ner response: %w", err)
	}

	return Relevant(spans), nil
}
