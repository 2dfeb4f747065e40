package resumeparser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client forwards résumé URLs to the external parser service and returns the
// extracted plain text. Parsing itself (PDF handling, NLP) lives in that
// service.
type Client interface {
	ExtractText(ctx context.Context, resumeURL string) (string, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type viewResumeRequest struct {
	URL string `json:"url"`
}

type viewResumeResponse struct {
	Text string `json:"text"`
}

// NewClient returns nil when no base URL is configured; callers treat a nil
// client as "parser unavailable".
func NewClient(baseURL string, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

func (c *httpClient) ExtractText(ctx context.Context, resumeURL string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("nil resume parser client")
	}
	endpoint := c.baseURL + "/view-resume"

	b, err := json.Marshal(viewResumeRequest{URL: strings.TrimSpace(resumeURL)})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[ResumeParser] ExtractText error endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return "", fmt.Errorf("resume parser failed: status=%d body=%s", resp.StatusCode, bodyStr)
	}

	var out viewResumeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Text, nil
}

var _ Client = (*httpClient)(nil)
