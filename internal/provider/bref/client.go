package bref

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/A1Marky/premium-nba-api/internal/provider"
	"github.com/chromedp/chromedp"
)

const (
	// BaseURL for Basketball Reference player pages
	BaseURL = "https://www.basketball-reference.com"

	// UserAgent for requests
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// MinRequestInterval to prevent rate limiting
	MinRequestInterval = 3 * time.Second
)

// Scraper is the fallback game-log source: it renders a player's
// game-log page in a headless browser and parses the stat table. Used
// only when the stats API is unreachable, so the rate limit can afford
// to be conservative.
type Scraper struct {
	baseURL string

	// mu serializes the check-sleep-update sequence below: concurrent
	// HTTP handlers can reach the fallback at the same time, and two
	// unsynchronized fetches would both skip the wait.
	mu          sync.Mutex
	lastRequest time.Time
	interval    time.Duration

	// Chromedp context for headless browser
	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewScraper creates a new Basketball Reference scraper.
func NewScraper(baseURL string) (*Scraper, error) {
	if baseURL == "" {
		baseURL = BaseURL
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Scraper{
		baseURL:  baseURL,
		interval: MinRequestInterval,
		allocCtx: allocCtx,
		cancel:   cancel,
	}, nil
}

// Close releases browser resources.
func (s *Scraper) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// PlayerGameLog fetches and parses a player's game-log page. The
// player ID is a Basketball Reference slug (e.g. "gilgesh01"); the
// season label picks the page year ("2023-24" -> 2024).
func (s *Scraper) PlayerGameLog(ctx context.Context, playerID, season string) (*provider.GameLog, error) {
	year, err := seasonPageYear(season)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/players/%s/%s/gamelog/%d", s.baseURL, playerID[:1], playerID, year)
	html, err := s.fetchWithRateLimit(ctx, url)
	if err != nil {
		return nil, err
	}

	rows, err := parseGameLogTable(html)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("player %s season %q: %w", playerID, season, provider.ErrNotFound)
	}

	return &provider.GameLog{PlayerID: playerID, Season: season, Rows: rows}, nil
}

// seasonPageYear maps a season label to the page year Basketball
// Reference files it under (the season's closing year).
func seasonPageYear(season string) (int, error) {
	if season == "" {
		now := time.Now()
		year := now.Year()
		if now.Month() >= time.October {
			year++
		}
		return year, nil
	}
	parts := strings.SplitN(season, "-", 2)
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid season label %q", season)
	}
	return year + 1, nil
}

// fetchWithRateLimit fetches content with automatic rate limiting.
func (s *Scraper) fetchWithRateLimit(ctx context.Context, url string) (string, error) {
	s.waitTurn()
	return s.fetch(ctx, url)
}

// waitTurn blocks until the caller may fetch, at most one request per
// interval. The lock is held through the sleep so concurrent callers
// queue up instead of all proceeding at once.
func (s *Scraper) waitTurn() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lastRequest.IsZero() {
		elapsed := time.Since(s.lastRequest)
		if elapsed < s.interval {
			waitTime := s.interval - elapsed
			log.Printf("[bref-scraper] rate limiting: waiting %v before next request", waitTime)
			time.Sleep(waitTime)
		}
	}
	s.lastRequest = time.Now()
}

// fetch renders the page in headless Chrome and returns its HTML.
func (s *Scraper) fetch(ctx context.Context, url string) (string, error) {
	taskCtx, cancel := chromedp.NewContext(s.allocCtx)
	defer cancel()

	taskCtx, timeoutCancel := context.WithTimeout(taskCtx, 30*time.Second)
	defer timeoutCancel()

	var html string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", url, err)
	}

	// Respect the caller's deadline as well.
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	return html, nil
}
