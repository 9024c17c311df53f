package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/pkg/log"
	"github.com/sandevgo/factbot/pkg/retry"
)

const maxResponseSize = 4 << 20 // 4MB, full article HTML can be large

// ErrNoResults means the search found no page for the subject.
var ErrNoResults = errors.New("no search results")

// Client talks to a MediaWiki api.php endpoint. Timeouts and the retry
// policy live here; callers see one blocking call per query and no
// caching between queries.
type Client struct {
	apiURL  string
	client  *http.Client
	retrier *retry.Retrier
}

func NewClient(cfg *config.AppConfig) *Client {
	return NewClientWith(cfg.WikiAPIURL, cfg.FetchTimeout, nil)
}

func NewClientWith(apiURL string, timeout time.Duration, policy *retry.Policy) *Client {
	return &Client{
		apiURL:  apiURL,
		client:  &http.Client{Timeout: timeout},
		retrier: retry.New(policy),
	}
}

// Search resolves a free-text subject to a page title. The first
// result is authoritative; disambiguation is out of scope.
func (c *Client) Search(ctx context.Context, subject string) (string, error) {
	params := url.Values{
		"action": {"opensearch"},
		"search": {subject},
		"limit":  {"1"},
		"format": {"json"},
	}

	body, err := c.get(ctx, params)
	if err != nil {
		return "", fmt.Errorf("search %q: %w", subject, err)
	}

	// opensearch replies [query, [titles], [descriptions], [urls]]
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("search %q: decode: %w", subject, err)
	}
	if len(payload) < 2 {
		return "", fmt.Errorf("search %q: malformed opensearch reply", subject)
	}
	var titles []string
	if err := json.Unmarshal(payload[1], &titles); err != nil {
		return "", fmt.Errorf("search %q: decode titles: %w", subject, err)
	}
	if len(titles) == 0 {
		return "", fmt.Errorf("search %q: %w", subject, ErrNoResults)
	}
	return titles[0], nil
}

// PageHTML fetches the rendered HTML of a page by exact title.
func (c *Client) PageHTML(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action":        {"parse"},
		"page":          {title},
		"prop":          {"text"},
		"format":        {"json"},
		"formatversion": {"2"},
	}

	body, err := c.get(ctx, params)
	if err != nil {
		return "", fmt.Errorf("fetch page %q: %w", title, err)
	}

	var payload struct {
		Parse struct {
			Title string `json:"title"`
			Text  string `json:"text"`
		} `json:"parse"`
		Error struct {
			Info string `json:"info"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("fetch page %q: decode: %w", title, err)
	}
	if payload.Error.Info != "" {
		return "", fmt.Errorf("fetch page %q: %s", title, payload.Error.Info)
	}
	return payload.Parse.Text, nil
}

// InfoboxText implements core.PageSource: search, fetch, isolate the
// first infobox block, flatten it to text.
func (c *Client) InfoboxText(ctx context.Context, subject string) (string, error) {
	title, err := c.Search(ctx, subject)
	if err != nil {
		return "", err
	}

	pageHTML, err := c.PageHTML(ctx, title)
	if err != nil {
		return "", err
	}

	text, err := FirstInfoboxText(pageHTML)
	if err != nil {
		return "", fmt.Errorf("page %q: %w", title, err)
	}
	log.FromCtx(ctx).Debug().Str("subject", subject).Str("title", title).Msg("infobox fetched")
	return text, nil
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	var body []byte
	err := c.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", core.UserAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to fetch url: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		if err != nil {
			return fmt.Errorf("failed to read body: %w", err)
		}
		return nil
	})
	return body, err
}
