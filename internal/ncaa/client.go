// Package ncaa fetches and parses stats.ncaa.org pages: the team
// directory, per-team schedules and contest play-by-play pages.
package ncaa

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

const (
	// BaseURL for NCAA statistics pages
	BaseURL = "http://stats.ncaa.org"

	// UserAgent for requests; the stats site rejects Go's default client
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// MinRequestInterval between page fetches to respect the site
	MinRequestInterval = 2 * time.Second
)

// Client fetches stats.ncaa.org pages with rate limiting. Requests go
// out as plain HTTP; when browser rendering is enabled, anti-bot
// rejections are retried once in a headless Chrome tab.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	lastRequest time.Time
	interval    time.Duration

	render   bool
	allocCtx context.Context
	cancel   context.CancelFunc
}

// New creates a client against a custom base URL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		interval:   MinRequestInterval,
	}
}

// NewClient creates a client with default settings.
func NewClient() *Client {
	return New(BaseURL)
}

// NewBrowserClient creates a client that falls back to headless Chrome
// when the site rejects plain requests. The browser process starts
// lazily on first use.
func NewBrowserClient() *Client {
	c := New(BaseURL)
	c.render = true
	return c
}

// SetInterval overrides the pause between successive requests.
func (c *Client) SetInterval(d time.Duration) {
	c.interval = d
}

// Close releases the browser allocator if one was started.
func (c *Client) Close() {
	if c.cancel != nil {
		c.cancel()
	}
}

// FetchDocument fetches one site path and parses the HTML.
func (c *Client) FetchDocument(ctx context.Context, path string) (*goquery.Document, error) {
	html, err := c.fetchWithRateLimit(ctx, path)
	if err != nil {
		return nil, err
	}
	return ParseHTML(html)
}

// fetchWithRateLimit enforces the inter-request pause around fetch.
func (c *Client) fetchWithRateLimit(ctx context.Context, path string) (string, error) {
	if !c.lastRequest.IsZero() {
		elapsed := time.Since(c.lastRequest)
		if elapsed < c.interval {
			waitTime := c.interval - elapsed
			log.Printf("[ncaa] Rate limiting: waiting %v before next request", waitTime)
			select {
			case <-time.After(waitTime):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	html, err := c.fetch(ctx, path)
	c.lastRequest = time.Now()

	return html, err
}

func (c *Client) fetch(ctx context.Context, path string) (string, error) {
	url := c.baseURL + path

	html, status, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	if status == http.StatusOK {
		return html, nil
	}
	if c.render && retryableStatus(status) {
		log.Printf("[ncaa] Got status %d for %s, retrying in browser", status, path)
		return c.renderPage(ctx, url)
	}
	return "", fmt.Errorf("fetch %s: status %d", url, status)
}

// retryableStatus marks the anti-bot responses a rendered browser tab
// usually clears.
func retryableStatus(status int) bool {
	return status == http.StatusForbidden || status == http.StatusServiceUnavailable
}

func (c *Client) get(ctx context.Context, url string) (string, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), resp.StatusCode, nil
}

// renderPage loads the page in a fresh headless browser tab.
func (c *Client) renderPage(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browserCtx, cancel := chromedp.NewContext(c.allocator())
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, 30*time.Second)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(1*time.Second), // Allow JS to render
		chromedp.OuterHTML(`html`, &htmlContent, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp error: %w", err)
	}
	if htmlContent == "" {
		return "", fmt.Errorf("empty HTML content returned")
	}
	return htmlContent, nil
}

// allocator lazily starts the shared headless Chrome process.
func (c *Client) allocator() context.Context {
	if c.allocCtx == nil {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(UserAgent),
		)
		c.allocCtx, c.cancel = chromedp.NewExecAllocator(context.Background(), opts...)
	}
	return c.allocCtx
}

// ParseHTML converts raw HTML into a goquery document.
func ParseHTML(htmlContent string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}
