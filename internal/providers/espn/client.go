package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fly-the-w/internal/domain"
	"fly-the-w/internal/providers"
)

// Config controls how the ESPN client reaches the upstream scoreboard.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches today's scoreboard from the public ESPN API and maps it to
// domain snapshots.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs an ESPN scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchScoreboard retrieves the current scoreboard. Transport errors,
// non-2xx responses, and malformed payloads all surface as *providers.FeedError.
func (c *Client) FetchScoreboard(ctx context.Context) ([]domain.GameSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/scoreboard", nil)
	if err != nil {
		return nil, &providers.FeedError{Provider: providerName, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FeedError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.FeedError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var payload scoreboardResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, &providers.FeedError{Provider: providerName, Err: decodeErr}
	}

	snapshots := make([]domain.GameSnapshot, 0, len(payload.Events))
	for _, ev := range payload.Events {
		if snap, ok := mapEvent(ev); ok {
			snapshots = append(snapshots, snap)
		}
	}
	return snapshots, nil
}

func normalizeBaseURL(base string) string {
	if base == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
