package geocode

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	suggestionLimit = 5
	cacheTTL        = 24 * time.Hour
	cachePrefix     = "geocode:"
)

// Suggestion is one location match, reduced to what the search flow needs.
type Suggestion struct {
	DisplayName string `json:"displayName"`
	Pincode     string `json:"pincode"`
}

// nominatimResult mirrors the fields we read from the Nominatim search API.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// Client resolves free-text location queries to pincode suggestions via
// Nominatim, with a Redis cache in front so repeated queries stay off the
// rate-limited upstream.
type Client struct {
	http   *resty.Client
	cache  *redis.Client
	logger *zap.Logger
}

// NewClient creates a geocoding client. cache may be nil, in which case
// every lookup goes upstream.
func NewClient(baseURL string, cache *redis.Client, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("User-Agent", "saathi-backend/1.0")
	return &Client{http: httpClient, cache: cache, logger: logger}
}

// Search returns up to five suggestions for the query. Lookup failures are
// logged and yield an empty list; the search page degrades instead of
// erroring.
func (c *Client) Search(ctx context.Context, query string) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	cacheKey := cachePrefix + strings.ToLower(query)
	if cached := c.fromCache(ctx, cacheKey); cached != nil {
		return cached
	}

	var results []nominatimResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":              query,
			"format":         "json",
			"addressdetails": "1",
			"limit":          "5",
		}).
		SetResult(&results).
		Get("/search")
	if err != nil {
		c.logger.Warn("geocode lookup failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	if resp.IsError() {
		c.logger.Warn("geocode lookup rejected", zap.String("query", query), zap.Int("status", resp.StatusCode()))
		return nil
	}

	suggestions := make([]Suggestion, 0, len(results))
	for _, r := range results {
		suggestions = append(suggestions, Suggestion{
			DisplayName: r.DisplayName,
			Pincode:     r.Address.Postcode,
		})
		if len(suggestions) == suggestionLimit {
			break
		}
	}

	c.toCache(ctx, cacheKey, suggestions)
	return suggestions
}

func (c *Client) fromCache(ctx context.Context, key string) []Suggestion {
	if c.cache == nil {
		return nil
	}
	raw, err := c.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("geocode cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	var suggestions []Suggestion
	if err := json.Unmarshal(raw, &suggestions); err != nil {
		return nil
	}
	return suggestions
}

func (c *Client) toCache(ctx context.Context, key string, suggestions []Suggestion) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		c.logger.Debug("geocode cache write failed", zap.String("key", key), zap.Error(err))
	}
}
