package constants

// Mission document store. The whole mission lives in one jsonb column; the
// version column backs optimistic concurrency on save.
const (
	InsertMission = `
		INSERT INTO missions (id, campaign_id, status, doc, version, updated_at)
		VALUES ($1, $2, $3, $4, 1, NOW())`

	GetMissionByID = `
		SELECT doc, version FROM missions WHERE id = $1`

	UpdateMissionDoc = `
		UPDATE missions
		SET doc = $2, status = $3, version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $4`

	ListMissionDocs = `
		SELECT doc, version FROM missions ORDER BY updated_at DESC`

	ListMissionDocsByCampaign = `
		SELECT doc, version FROM missions WHERE campaign_id = $1 ORDER BY updated_at DESC`

	ListMissionIDsByPrefix = `
		SELECT id FROM missions WHERE id LIKE $1`

	DeleteMissionByID = `
		DELETE FROM missions WHERE id = $1`
)

// API keys for service-to-service auth (bot, rolesd). Only the SHA-256 digest
// of a key is stored.
const (
	InsertAPIKey = `
		INSERT INTO api_keys (key_hash, label, status, created_at)
		VALUES ($1, $2, true, NOW())
		RETURNING id`

	GetAPIKeyStatus = `
		SELECT id, status FROM api_keys WHERE key_hash = $1`
)
