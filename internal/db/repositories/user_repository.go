package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByDiscordID retrieves a user by their Discord ID.
func (r *UserRepository) GetByDiscordID(ctx context.Context, discordID string) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).
		Where("discord_id = ?", discordID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// Upsert registers the user on first sight and refreshes the display name on
// subsequent logins.
func (r *UserRepository) Upsert(ctx context.Context, discordID, displayName string) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).
		Where("discord_id = ?", discordID).
		First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = entities.User{
			ID:          uuid.New().String(),
			DiscordID:   discordID,
			DisplayName: displayName,
			IsActive:    true,
		}
		if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, nil

	case err != nil:
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if displayName != "" && user.DisplayName != displayName {
		user.DisplayName = displayName
		if err := r.db.WithContext(ctx).Save(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}
	return &user, nil
}
