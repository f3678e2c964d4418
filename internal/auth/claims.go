package auth

// UserClaims is the common identity interface carried through request
// contexts, regardless of whether the caller authenticated with a session
// token, an API key, or a Bearer JWT.
type UserClaims interface {
	UserID() string
	DisplayName() string
	Roles() []string
	Source() string
	HasRole(role string) bool
}

type SessionClaims struct {
	DiscordID string
	Name      string
	RoleNames []string
}

func (c *SessionClaims) UserID() string      { return c.DiscordID }
func (c *SessionClaims) DisplayName() string { return c.Name }
func (c *SessionClaims) Roles() []string     { return c.RoleNames }
func (c *SessionClaims) Source() string      { return "SESSION" }
func (c *SessionClaims) HasRole(role string) bool {
	for _, r := range c.RoleNames {
		if r == role {
			return true
		}
	}
	return false
}

type APIKeyClaims struct {
	DiscordID string
	Name      string
	RoleNames []string
}

func (c *APIKeyClaims) UserID() string      { return c.DiscordID }
func (c *APIKeyClaims) DisplayName() string { return c.Name }
func (c *APIKeyClaims) Roles() []string     { return c.RoleNames }
func (c *APIKeyClaims) Source() string      { return "API_KEY" }
func (c *APIKeyClaims) HasRole(role string) bool {
	for _, r := range c.RoleNames {
		if r == role {
			return true
		}
	}
	return false
}
