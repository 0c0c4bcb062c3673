package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// WikidataClient fetches entity claims from the knowledge base.
type WikidataClient struct {
	BaseURL    string
	UserAgent  string
	httpClient *http.Client
}

// NewWikidataClient creates a knowledge-base client.
func NewWikidataClient(baseURL, userAgent string, timeout time.Duration) *WikidataClient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &WikidataClient{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Claims returns the first string value of each requested property for
// one entity. Properties the entity lacks are absent from the result
// map rather than an error.
func (c *WikidataClient) Claims(ctx context.Context, id string, properties []string) (map[string]string, error) {
	params := url.Values{}
	params.Set("action", "wbgetentities")
	params.Set("ids", id)
	params.Set("props", "claims")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query knowledge base: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("knowledge base returned status %d: %s", resp.StatusCode, string(body))
	}

	var entityResp struct {
		Entities map[string]struct {
			Claims map[string][]struct {
				MainSnak struct {
					DataValue struct {
						Value json.RawMessage `json:"value"`
					} `json:"datavalue"`
				} `json:"mainsnak"`
			} `json:"claims"`
		} `json:"entities"`
		Error *struct {
			Code string `json:"code"`
			Info string `json:"info"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entityResp); err != nil {
		return nil, fmt.Errorf("failed to decode entity response: %w", err)
	}
	if entityResp.Error != nil {
		return nil, fmt.Errorf("knowledge base error %s: %s", entityResp.Error.Code, entityResp.Error.Info)
	}

	entity, ok := entityResp.Entities[id]
	if !ok {
		return nil, fmt.Errorf("entity %s not found", id)
	}

	claims := make(map[string]string)
	for _, prop := range properties {
		statements := entity.Claims[prop]
		if len(statements) == 0 {
			continue
		}
		// The enrichment properties carry plain string values.
		var value string
		if err := json.Unmarshal(statements[0].MainSnak.DataValue.Value, &value); err != nil {
			continue
		}
		if value != "" {
			claims[prop] = value
		}
	}
	return claims, nil
}
