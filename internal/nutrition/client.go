package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://trackapi.nutritionix.com"

// ErrNotConfigured is returned when the Nutritionix credentials are absent.
var ErrNotConfigured = errors.New("Nutritionix credentials not configured on server.")

type Food struct {
	FoodName          string  `json:"food_name"`
	Calories          float64 `json:"nf_calories"`
	Protein           float64 `json:"nf_protein"`
	TotalCarbohydrate float64 `json:"nf_total_carbohydrate"`
	TotalFat          float64 `json:"nf_total_fat"`
}

type LookupResult struct {
	Foods []Food `json:"foods"`
}

// Client proxies natural-language nutrient lookups so the API key stays
// on the server.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appID      string
	appKey     string
}

func NewClient(appID, appKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
		appID:      appID,
		appKey:     appKey,
	}
}

// SetBaseURL overrides the upstream endpoint, used in tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

func (c *Client) Lookup(ctx context.Context, query string) (*LookupResult, error) {
	if c.appID == "" || c.appKey == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/v2/natural/nutrients"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", c.appID)
	req.Header.Set("x-app-key", c.appKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Nutritionix returned status %d", resp.StatusCode)
	}

	var result LookupResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
