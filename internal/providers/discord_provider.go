package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const discordAPIBase = "https://discord.com/api/v10"

// GuildMember is the subset of the Discord member object rolesd needs.
type GuildMember struct {
	Nick    string   `json:"nick"`
	RoleIDs []string `json:"roles"`
	User    struct {
		Username   string `json:"username"`
		GlobalName string `json:"global_name"`
	} `json:"user"`
}

// DisplayName picks the most specific name Discord offers.
func (m *GuildMember) DisplayName() string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}

type guildRole struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DiscordProvider reads guild membership from the Discord REST API using a
// bot token.
type DiscordProvider struct {
	token   string
	guildID string
	baseURL string
	client  *http.Client
}

func NewDiscordProvider(token, guildID string) *DiscordProvider {
	return &DiscordProvider{
		token:   token,
		guildID: guildID,
		baseURL: discordAPIBase,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *DiscordProvider) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("discord %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Member fetches one guild member.
func (p *DiscordProvider) Member(ctx context.Context, userID string) (*GuildMember, error) {
	var member GuildMember
	path := fmt.Sprintf("/guilds/%s/members/%s", p.guildID, userID)
	if err := p.get(ctx, path, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// RoleNames fetches the guild's role table as an ID-to-name map.
func (p *DiscordProvider) RoleNames(ctx context.Context) (map[string]string, error) {
	var roles []guildRole
	path := fmt.Sprintf("/guilds/%s/roles", p.guildID)
	if err := p.get(ctx, path, &roles); err != nil {
		return nil, err
	}
	names := make(map[string]string, len(roles))
	for _, r := range roles {
		names[r.ID] = r.Name
	}
	return names, nil
}
