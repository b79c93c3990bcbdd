// Package wiki looks up short factual summaries from Wikipedia.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound reports that no article matched the topic.
var ErrNotFound = errors.New("no matching article")

// AmbiguousError reports a disambiguation page, carrying a bounded list
// of candidate titles.
type AmbiguousError struct {
	Topic   string
	Options []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%q is ambiguous; options include: %s", e.Topic, strings.Join(e.Options, ", "))
}

// Client queries the Wikipedia search and summary endpoints.
type Client struct {
	BaseURL    string
	Sentences  int
	MaxOptions int
	HTTP       *http.Client
}

// New builds a client against one Wikipedia base URL.
func New(baseURL string, sentences int, maxOptions int) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Sentences:  sentences,
		MaxOptions: maxOptions,
		HTTP:       &http.Client{Timeout: 5 * time.Second},
	}
}

// Summary resolves a topic to a short extract. Topics with no match yield
// ErrNotFound; disambiguation pages yield an AmbiguousError listing at
// most MaxOptions candidates.
func (c *Client) Summary(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", fmt.Errorf("topic must not be empty")
	}

	titles, err := c.search(ctx, topic)
	if err != nil {
		return "", err
	}
	if len(titles) == 0 {
		return "", ErrNotFound
	}

	extract, kind, err := c.pageSummary(ctx, titles[0])
	if err != nil {
		return "", err
	}
	if kind == "disambiguation" {
		options := titles
		if len(options) > c.MaxOptions {
			options = options[:c.MaxOptions]
		}
		return "", &AmbiguousError{Topic: topic, Options: options}
	}
	if strings.TrimSpace(extract) == "" {
		return "", ErrNotFound
	}
	return trimSentences(extract, c.Sentences), nil
}

// search runs the opensearch endpoint and returns candidate titles.
func (c *Client) search(ctx context.Context, topic string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/w/api.php?action=opensearch&format=json&limit=%d&search=%s",
		c.BaseURL, c.MaxOptions, url.QueryEscape(topic))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	// The opensearch payload is [query, [titles], [descriptions], [urls]].
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if len(payload) < 2 {
		return nil, fmt.Errorf("unexpected search response shape")
	}
	var titles []string
	if err := json.Unmarshal(payload[1], &titles); err != nil {
		return nil, fmt.Errorf("decode search titles: %w", err)
	}
	return titles, nil
}

// pageSummary fetches the REST summary for one title.
func (c *Client) pageSummary(ctx context.Context, title string) (extract string, kind string, err error) {
	endpoint := fmt.Sprintf("%s/api/rest_v1/page/summary/%s",
		c.BaseURL, url.PathEscape(strings.ReplaceAll(title, " ", "_")))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return "", "", err
	}

	var payload struct {
		Type    string `json:"type"`
		Extract string `json:"extract"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", "", fmt.Errorf("decode summary response: %w", err)
	}
	return payload.Extract, payload.Type, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, endpoint)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}

// trimSentences keeps the first n sentences of an extract.
func trimSentences(text string, n int) string {
	if n <= 0 {
		return text
	}
	count := 0
	for i, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		count++
		if count == n {
			return strings.TrimSpace(text[:i+1])
		}
	}
	return strings.TrimSpace(text)
}
