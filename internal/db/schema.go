package db

import "github.com/jmoiron/sqlx"

// schema holds the tables managed through sqlx. The GORM side provisions its
// own tables via AutoMigrate.
const schema = `
CREATE TABLE IF NOT EXISTS missions (
	id          TEXT PRIMARY KEY,
	campaign_id TEXT NOT NULL,
	status      TEXT NOT NULL,
	doc         JSONB NOT NULL,
	version     BIGINT NOT NULL DEFAULT 1,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_missions_campaign ON missions(campaign_id);

CREATE TABLE IF NOT EXISTS api_keys (
	id         BIGSERIAL PRIMARY KEY,
	key_hash   TEXT NOT NULL UNIQUE,
	label      TEXT NOT NULL,
	status     BOOLEAN NOT NULL DEFAULT true,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema creates the sqlx-managed tables if they do not exist.
func EnsureSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
