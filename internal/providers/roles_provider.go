package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// MemberInfo is what the roles service knows about a guild member.
type MemberInfo struct {
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
}

// RolesProvider resolves a Discord user to their display name and role set.
type RolesProvider interface {
	Lookup(ctx context.Context, userID string) (*MemberInfo, error)
}

// HTTPRolesProvider talks to the rolesd companion service. The short client
// timeout keeps signup requests responsive when rolesd is down; callers fall
// back to cached roles on error.
type HTTPRolesProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPRolesProvider(baseURL, apiKey string) *HTTPRolesProvider {
	return &HTTPRolesProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 2 * time.Second},
	}
}

func (p *HTTPRolesProvider) Lookup(ctx context.Context, userID string) (*MemberInfo, error) {
	url := fmt.Sprintf("%s/api/v1/members/%s", p.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("roles lookup for %s: %w", userID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("roles lookup for %s: status %d", userID, resp.StatusCode)
	}

	var info MemberInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("roles lookup for %s: decode: %w", userID, err)
	}
	return &info, nil
}
