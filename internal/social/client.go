package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tripmate/internal/cache"
	"tripmate/internal/model"
)

const friendsCacheTTL = 15 * time.Minute

// Friend is one entry of a user's social-graph friend list.
type Friend struct {
	FacebookID string `json:"id"`
	Name       string `json:"name"`
}

// Provider answers friend-list lookups. A failed lookup fails the calling
// operation; callers never work from partial data.
type Provider interface {
	FriendsOf(ctx context.Context, user *model.User) ([]Friend, error)
}

// GraphClient is a Facebook Graph API backed Provider with a fail-safe
// Redis cache in front of it.
type GraphClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	cache       *cache.Client
}

// NewGraphClient creates a Graph API client.
func NewGraphClient(baseURL, accessToken string, cacheClient *cache.Client) *GraphClient {
	return &GraphClient{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		cache:       cacheClient,
	}
}

var _ Provider = (*GraphClient)(nil)

type friendsResponse struct {
	Data []Friend `json:"data"`
}

// FriendsOf fetches the user's friend list, serving from cache when a recent
// lookup exists.
func (c *GraphClient) FriendsOf(ctx context.Context, user *model.User) ([]Friend, error) {
	key := c.cacheKey(user.FacebookID)
	if data, _ := c.cache.Get(ctx, key); data != nil {
		var cached []Friend
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	url := fmt.Sprintf("%s/%s/friends?access_token=%s", c.baseURL, user.FacebookID, c.accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build friends request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch friends: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch friends: unexpected status %d", resp.StatusCode)
	}

	var parsed friendsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode friends response: %w", err)
	}

	if payload, err := json.Marshal(parsed.Data); err == nil {
		_ = c.cache.Set(ctx, key, payload, friendsCacheTTL)
	}

	return parsed.Data, nil
}

func (c *GraphClient) cacheKey(facebookID string) string {
	return "friends:" + facebookID
}
