package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openokr/okr/props"
	sent "github.com/openokr/okr/sentence"
)

// Client calls a syntactic+semantic parser sidecar over HTTP.
type Client struct {
	url  string
	http *http.Client
}

var _ Service = (*Client)(nil)

func NewClient(url string) *Client {
	return &Client{url: url, http: &http.Client{}}
}

func (c *Client) Parse(ctx context.Context, sentence string) (*sent.Tree, *props.Graph, error) {
	body, err := json.Marshal(map[string]string{"sentence": sentence})
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("parser request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("parser service returned %s", resp.Status)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, nil, fmt.Errorf("parser response: %w", err)
	}

	graph, err := result.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("parser response: %w", err)
	}

	return result.Tree(), graph, nil
}
