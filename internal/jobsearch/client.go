package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config carries the external search API settings (JSearch-style RapidAPI
// endpoint).
type Config struct {
	BaseURL  string
	APIKey   string
	APIHost  string
	Country  string
	NumPages int
	Timeout  time.Duration
}

// Client performs the raw HTTP call. It reports failures; collapsing them to
// mock data is the Adapter's job.
type Client struct {
	cfg  Config
	http *http.Client
}

type searchResponse struct {
	Data []RawPosting `json:"data"`
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://jsearch.p.rapidapi.com"
	}
	if cfg.APIHost == "" {
		cfg.APIHost = "jsearch.p.rapidapi.com"
	}
	if cfg.Country == "" {
		cfg.Country = "in"
	}
	if cfg.NumPages <= 0 {
		cfg.NumPages = 2
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Configured() bool {
	return c != nil && strings.TrimSpace(c.cfg.APIKey) != ""
}

// Search fetches one page of postings for query. Any transport error,
// non-2xx status, or undecodable body is returned as an error.
func (c *Client) Search(ctx context.Context, query string, page int) (Page, error) {
	if c == nil || c.http == nil {
		return Page{}, fmt.Errorf("jobsearch: nil client")
	}
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("num_pages", strconv.Itoa(c.cfg.NumPages))
	q.Set("date_posted", "all")
	q.Set("country", c.cfg.Country)

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/search?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Page{}, err
	}
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.APIHost)

	resp, err := c.http.Do(req)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Page{}, fmt.Errorf("jobsearch: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Page{}, fmt.Errorf("jobsearch: decode response: %w", err)
	}

	return Page{Count: len(out.Data), Results: out.Data}, nil
}
