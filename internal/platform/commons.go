// Package platform holds the HTTP clients for the target media
// platform and the remote knowledge base. Failures here are
// batch-fatal: the pipeline assumes these collaborators are reliable or
// fail closed before data reaches it.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the media platform's action API.
type Client struct {
	BaseURL    string
	UserAgent  string
	httpClient *http.Client
}

// NewClient creates a platform API client.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	params.Set("format", "json")
	params.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query platform API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API returned status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// CategoryExists reports whether the named category page exists. The
// name may be given with or without its namespace prefix.
func (c *Client) CategoryExists(ctx context.Context, name string) (bool, error) {
	title := name
	if !strings.HasPrefix(strings.ToLower(title), "category:") {
		title = "Category:" + title
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)

	body, err := c.get(ctx, params)
	if err != nil {
		return false, err
	}

	var queryResp struct {
		Query struct {
			Pages []struct {
				Title   string `json:"title"`
				Missing bool   `json:"missing"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &queryResp); err != nil {
		return false, fmt.Errorf("failed to decode category query: %w", err)
	}
	if len(queryResp.Query.Pages) == 0 {
		return false, nil
	}
	return !queryResp.Query.Pages[0].Missing, nil
}

// LinkSearch returns every file-namespace page linking to a URL under
// the given pattern, as a source URL → page title index. Pagination is
// followed to exhaustion; one call per batch builds the whole reverse
// index.
func (c *Client) LinkSearch(ctx context.Context, pattern string) (map[string]string, error) {
	query := pattern
	protocol := "http"
	if proto, rest, found := strings.Cut(pattern, "://"); found {
		protocol = proto
		query = rest
	}

	index := make(map[string]string)
	continueToken := ""
	for {
		params := url.Values{}
		params.Set("action", "query")
		params.Set("list", "exturlusage")
		params.Set("euquery", query)
		params.Set("euprotocol", protocol)
		params.Set("eunamespace", "6")
		params.Set("euprop", "title|url")
		params.Set("eulimit", "500")
		if continueToken != "" {
			params.Set("euoffset", continueToken)
		}

		body, err := c.get(ctx, params)
		if err != nil {
			return nil, err
		}

		var searchResp struct {
			Continue struct {
				EuOffset json.Number `json:"euoffset"`
			} `json:"continue"`
			Query struct {
				ExtURLUsage []struct {
					Title string `json:"title"`
					URL   string `json:"url"`
				} `json:"exturlusage"`
			} `json:"query"`
		}
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode linksearch response: %w", err)
		}

		for _, hit := range searchResp.Query.ExtURLUsage {
			index[hit.URL] = hit.Title
		}

		if searchResp.Continue.EuOffset == "" {
			break
		}
		continueToken = searchResp.Continue.EuOffset.String()
	}

	slog.Debug("Built reverse-link index", "pattern", pattern, "links", len(index))
	return index, nil
}

// PageWikitext fetches the current wikitext of one page.
func (c *Client) PageWikitext(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "revisions")
	params.Set("rvprop", "content")
	params.Set("rvslots", "main")

	body, err := c.get(ctx, params)
	if err != nil {
		return "", err
	}

	var pageResp struct {
		Query struct {
			Pages []struct {
				Missing   bool `json:"missing"`
				Revisions []struct {
					Slots struct {
						Main struct {
							Content string `json:"content"`
						} `json:"main"`
					} `json:"slots"`
				} `json:"revisions"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &pageResp); err != nil {
		return "", fmt.Errorf("failed to decode page content: %w", err)
	}
	if len(pageResp.Query.Pages) == 0 || pageResp.Query.Pages[0].Missing {
		return "", fmt.Errorf("page %s does not exist", title)
	}
	revisions := pageResp.Query.Pages[0].Revisions
	if len(revisions) == 0 {
		return "", fmt.Errorf("page %s has no revisions", title)
	}
	return revisions[0].Slots.Main.Content, nil
}
