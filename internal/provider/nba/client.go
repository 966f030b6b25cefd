package nba

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os/exec"

	"github.com/A1Marky/premium-nba-api/internal/provider"
)

const (
	// BaseURL for the NBA Stats API
	BaseURL = "https://stats.nba.com/stats"

	// UserAgent mirrors a desktop browser; the stats host rejects
	// unadorned clients.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client fetches player game logs from the NBA Stats API.
// Note: Uses curl internally because stats.nba.com blocks Go's HTTP
// client fingerprint.
type Client struct {
	baseURL string
}

// New creates a new NBA Stats API client with a custom base URL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{baseURL: baseURL}
}

// NewClient creates a new NBA Stats API client with default settings.
func NewClient() *Client {
	return New(BaseURL)
}

// PlayerGameLog fetches a player's game log, optionally restricted to
// one season label ("2023-24"). An empty season asks the upstream for
// its current season.
func (c *Client) PlayerGameLog(ctx context.Context, playerID, season string) (*provider.GameLog, error) {
	params := url.Values{}
	params.Set("PlayerID", playerID)
	params.Set("SeasonType", "Regular Season")
	if season != "" {
		params.Set("Season", season)
	}

	payload, err := c.fetch(ctx, fmt.Sprintf("%s/playergamelog?%s", c.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}

	rows, err := parseGameLogPayload(payload)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("player %s season %q: %w", playerID, season, provider.ErrNotFound)
	}

	return &provider.GameLog{PlayerID: playerID, Season: season, Rows: rows}, nil
}

// fetch makes an HTTP GET request using curl. stats.nba.com blocks
// Go's HTTP client but curl with browser headers works reliably.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "curl", "-s", "-L", "-m", "20",
		"-H", "User-Agent: "+UserAgent,
		"-H", "Referer: https://www.nba.com/",
		"-H", "Accept: application/json",
		url,
	)

	output, err := cmd.Output()
	if err != nil {
		log.Printf("[nba-client] curl failed: %v", err)
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("curl failed: %s (stderr: %s)", err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("curl execution failed: %w", err)
	}

	if len(output) > 0 && output[0] == '<' {
		return nil, fmt.Errorf("NBA API returned HTML error page: %s", string(output[:min(len(output), 200)]))
	}

	return output, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
