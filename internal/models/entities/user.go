package entities

import "time"

// User links an identity-provider account to the ops site. Registration is
// implicit on first login; DiscordID is the provider's stable identifier.
type User struct {
	ID          string `gorm:"primaryKey" json:"id"`
	DiscordID   string `gorm:"uniqueIndex" json:"discord_id"`
	DisplayName string `json:"display_name"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
