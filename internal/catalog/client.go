// Package catalog talks to the external show catalog. The catalog is
// only ever used to decorate booking output with a display name, so
// callers treat every failure here as non-fatal.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	requestTimeout = 3 * time.Second
	cacheTTL       = 5 * time.Minute
)

// Client fetches show display names over HTTP with an optional Redis
// read-through cache. A nil Redis client disables caching; lookups
// then always hit the catalog.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *redis.Client
}

// New constructs a catalog client for the given base URL. cache may
// be nil.
func New(baseURL string, cache *redis.Client) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		cache:   cache,
	}
}

type showPayload struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ShowName resolves a show id to its display name via GET
// {baseURL}/{id}. Cache hits skip the HTTP round trip; cache write
// failures are ignored.
func (c *Client) ShowName(ctx context.Context, showID uint64) (string, error) {
	key := fmt.Sprintf("show:name:%d", showID)
	if c.cache != nil {
		if name, err := c.cache.Get(ctx, key).Result(); err == nil {
			return name, nil
		}
	}

	url := fmt.Sprintf("%s/%d", c.baseURL, showID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("show catalog: unexpected status %d for show %d", resp.StatusCode, showID)
	}

	var payload showPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	if c.cache != nil {
		_ = c.cache.Set(ctx, key, payload.Name, cacheTTL).Err()
	}
	return payload.Name, nil
}
