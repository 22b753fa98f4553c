// Package anilist implements a client for the AniList GraphQL API
// (https://docs.anilist.co/), used to proxy anime metadata searches.
package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultURL is the public AniList GraphQL endpoint.
const DefaultURL = "https://graphql.anilist.co"

// searchQuery looks up a single media item by search term. The term is sent
// as a GraphQL variable, never interpolated into the query text.
const searchQuery = `query ($search: String) {
  Media(search: $search, type: ANIME) {
    id
    title { romaji }
    episodes
    coverImage { large }
    status
  }
}`

var ErrUpstream = errors.New("anilist request failed")

// Client is a thin AniList GraphQL client. It is safe for concurrent use and
// should be constructed once at startup.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client against the given endpoint with an explicit
// request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		},
	}
}

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// SearchAnime runs a media search for the given term and returns the raw
// response body. The body is not parsed; callers relay it verbatim. Transport
// failures and non-2xx upstream statuses both wrap ErrUpstream.
func (c *Client) SearchAnime(ctx context.Context, search string) (string, error) {
	payload, err := json.Marshal(graphqlRequest{
		Query:     searchQuery,
		Variables: map[string]string{"search": search},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	return string(body), nil
}
