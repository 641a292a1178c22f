// Package fetch downloads personal puzzle inputs from the event website.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/publicsuffix"

	"advent-solver/internal/logging"
)

const (
	defaultTimeout = 30 * time.Second
	maxInputBytes  = 1 << 20
	maxMessageLen  = 200
	userAgent      = "advent-solver (+https://github.com/advent-solver)"
)

var ErrNoSession = errors.New("no session token configured (set ADVENT_OF_CODE_SESSION)")

// StatusError reports a non-200 response.
type StatusError struct {
	URL     string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("GET %s: HTTP %d %s", e.URL, e.Code, http.StatusText(e.Code))
	if e.Message != "" {
		msg += ": " + e.Message
	}

	return msg
}

// Client fetches inputs for one event year using a session cookie.
type Client struct {
	base   *url.URL
	year   int
	http   *http.Client
	logger *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its cookie jar is
// replaced by one holding the session.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for baseURL such as "https://adventofcode.com".
func New(baseURL string, year int, session string, opts ...Option) (*Client, error) {
	if session == "" {
		return nil, ErrNoSession
	}

	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	jar.SetCookies(base, []*http.Cookie{{Name: "session", Value: session, Path: "/"}})

	c := &Client{
		base: base,
		year: year,
		http: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.http.Jar = jar
	c.logger = logging.OrNop(c.logger)

	return c, nil
}

// URL returns the input address for day.
func (c *Client) URL(day int) string {
	return c.base.JoinPath(fmt.Sprint(c.year), "day", fmt.Sprint(day), "input").String()
}

// Fetch downloads day's input.
func (c *Client) Fetch(ctx context.Context, day int) (string, error) {
	target := c.URL(day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch input: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxInputBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("Fetched input",
		zap.Int("day", day),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{
			URL:     target,
			Code:    resp.StatusCode,
			Message: message(resp.Header.Get("Content-Type"), body),
		}
	}

	return string(body), nil
}

// message condenses an error body to one short line. HTML pages are reduced
// to their visible text.
func message(contentType string, body []byte) string {
	text := string(body)

	if strings.Contains(contentType, "text/html") {
		if doc, err := html.Parse(strings.NewReader(text)); err == nil {
			text = visibleText(doc)
		}
	}

	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxMessageLen {
		text = text[:maxMessageLen] + "..."
	}

	return text
}

func visibleText(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "head") {
			return
		}

		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}

	walk(n)

	return b.String()
}
