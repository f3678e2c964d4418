package repositories

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

type KeysRepo struct {
	db *sqlx.DB
}

func NewApiKeysRepo(db *sqlx.DB) *KeysRepo {
	return &KeysRepo{db}
}

// GetStatus looks up an API key by its digest.
func (r *KeysRepo) GetStatus(ctx context.Context, key string) (*entities.APIKey, error) {
	var keyRes entities.APIKey

	err := r.db.QueryRowxContext(ctx, constants.GetAPIKeyStatus, HashKey(key)).StructScan(&keyRes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("unknown api key")
		}
		return nil, err
	}

	return &keyRes, nil
}

// Create mints a new random API key, stores its digest under the given label
// and returns the plaintext key. The plaintext is shown once and never stored.
func (r *KeysRepo) Create(ctx context.Context, label string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	key := hex.EncodeToString(raw)

	var id string
	if err := r.db.QueryRowxContext(ctx, constants.InsertAPIKey, HashKey(key), label).Scan(&id); err != nil {
		return "", fmt.Errorf("store key: %w", err)
	}
	return key, nil
}

// HashKey returns the hex SHA-256 digest stored in place of the key.
func HashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
