package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ServiceSummary and BusinessSummary are the wire shapes the matching
// service scores against.
type ServiceSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type BusinessSummary struct {
	ID           uint             `json:"id"`
	BusinessName string           `json:"business_name"`
	Services     []ServiceSummary `json:"services"`
}

type Result struct {
	Keywords []string          `json:"keywords"`
	Matches  []BusinessSummary `json:"matches"`
}

// Matcher is the external natural-language matching collaborator. Its
// ranking logic lives entirely on the other side of the wire.
type Matcher interface {
	AnalyzeQuery(ctx context.Context, query string, businesses []BusinessSummary) (*Result, error)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type analyzeRequest struct {
	Query      string            `json:"query"`
	Businesses []BusinessSummary `json:"businesses"`
}

func (c *Client) AnalyzeQuery(
	ctx context.Context,
	query string,
	businesses []BusinessSummary,
) (*Result, error) {

	body, err := json.Marshal(analyzeRequest{
		Query:      query,
		Businesses: businesses,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/analyze-query",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search service: unexpected status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("search service: decode response: %w", err)
	}

	return &result, nil
}

var _ Matcher = (*Client)(nil)
