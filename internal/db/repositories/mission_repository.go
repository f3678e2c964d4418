package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/metrics"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

// ErrVersionConflict is returned when a save loses the optimistic-concurrency
// race: the document changed under us since it was loaded.
var ErrVersionConflict = errors.New("mission version conflict")

// MissionRepository persists whole mission documents as jsonb rows.
type MissionRepository struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewMissionRepository(db *sqlx.DB, m *metrics.MetricsRegistry) *MissionRepository {
	return &MissionRepository{db: db, metrics: m}
}

func (r *MissionRepository) observe(queryType string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueriesTotal.WithLabelValues(queryType).Inc()
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// Create inserts a new mission document at version 1.
func (r *MissionRepository) Create(ctx context.Context, m *entities.Mission) error {
	defer r.observe("mission_create", time.Now())

	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal mission %s: %w", m.ID, err)
	}

	if _, err := r.db.ExecContext(ctx, constants.InsertMission, m.ID, m.CampaignID, m.Status, doc); err != nil {
		return fmt.Errorf("insert mission %s: %w", m.ID, err)
	}
	m.Version = 1
	return nil
}

// Get loads a mission document by ID. Documents written by earlier releases
// are normalized to the current shape on the way in.
func (r *MissionRepository) Get(ctx context.Context, id string) (*entities.Mission, error) {
	defer r.observe("mission_get", time.Now())

	var row struct {
		Doc     []byte `db:"doc"`
		Version int    `db:"version"`
	}
	if err := r.db.QueryRowxContext(ctx, constants.GetMissionByID, id).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, constants.OpErrorf(constants.ErrNotFound, "%s", constants.MsgMissionNotFound)
		}
		return nil, fmt.Errorf("get mission %s: %w", id, err)
	}

	mission, err := decodeMissionDoc(row.Doc)
	if err != nil {
		return nil, fmt.Errorf("decode mission %s: %w", id, err)
	}
	mission.Version = row.Version
	return mission, nil
}

// Save writes the document back, guarded by the version it was loaded at.
// On success the in-memory version is advanced to match the row.
func (r *MissionRepository) Save(ctx context.Context, m *entities.Mission) error {
	defer r.observe("mission_save", time.Now())

	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal mission %s: %w", m.ID, err)
	}

	res, err := r.db.ExecContext(ctx, constants.UpdateMissionDoc, m.ID, doc, m.Status, m.Version)
	if err != nil {
		return fmt.Errorf("save mission %s: %w", m.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save mission %s: %w", m.ID, err)
	}
	if affected == 0 {
		if r.metrics != nil {
			r.metrics.MissionSaveConflicts.Inc()
		}
		return ErrVersionConflict
	}
	m.Version++
	return nil
}

// List returns all mission documents, most recently updated first.
func (r *MissionRepository) List(ctx context.Context) ([]*entities.Mission, error) {
	return r.list(ctx, constants.ListMissionDocs)
}

// ListByCampaign returns the campaign's mission documents.
func (r *MissionRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*entities.Mission, error) {
	return r.list(ctx, constants.ListMissionDocsByCampaign, campaignID)
}

func (r *MissionRepository) list(ctx context.Context, query string, args ...any) ([]*entities.Mission, error) {
	defer r.observe("mission_list", time.Now())

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	defer rows.Close()

	var missions []*entities.Mission
	for rows.Next() {
		var row struct {
			Doc     []byte `db:"doc"`
			Version int    `db:"version"`
		}
		if err := rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("scan mission row: %w", err)
		}
		mission, err := decodeMissionDoc(row.Doc)
		if err != nil {
			return nil, fmt.Errorf("decode mission row: %w", err)
		}
		mission.Version = row.Version
		missions = append(missions, mission)
	}
	return missions, rows.Err()
}

// NextSequence returns the next free two-digit sequence for a mission ID
// prefix such as "PP15EX".
func (r *MissionRepository) NextSequence(ctx context.Context, prefix string) (int, error) {
	defer r.observe("mission_next_seq", time.Now())

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, constants.ListMissionIDsByPrefix, prefix+"%"); err != nil {
		return 0, fmt.Errorf("scan mission ids for %s: %w", prefix, err)
	}

	max := 0
	for _, id := range ids {
		seq, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max + 1, nil
}

// Delete removes a mission document.
func (r *MissionRepository) Delete(ctx context.Context, id string) error {
	defer r.observe("mission_delete", time.Now())

	if _, err := r.db.ExecContext(ctx, constants.DeleteMissionByID, id); err != nil {
		return fmt.Errorf("delete mission %s: %w", id, err)
	}
	return nil
}

// decodeMissionDoc unmarshals a document, upgrading flights stored in the
// legacy shape where pilots lived in a "members" array instead of the
// slot-keyed "pilots" map.
func decodeMissionDoc(doc []byte) (*entities.Mission, error) {
	var mission entities.Mission
	if err := json.Unmarshal(doc, &mission); err != nil {
		return nil, err
	}

	var legacy struct {
		Flights map[string]struct {
			Members []*entities.Pilot `json:"members"`
		} `json:"flights"`
	}
	if err := json.Unmarshal(doc, &legacy); err != nil {
		return nil, err
	}

	for id, lf := range legacy.Flights {
		flight := mission.Flights[id]
		if flight == nil || len(lf.Members) == 0 || len(flight.Pilots) > 0 {
			continue
		}
		flight.Pilots = make(map[string]*entities.Pilot, len(lf.Members))
		for i, member := range lf.Members {
			slot := member.Slot
			if slot == "" {
				slot = strconv.Itoa(i + 1)
				member.Slot = slot
			}
			flight.Pilots[slot] = member
		}
	}

	// Claimed-slot snapshots used to be keyed by the claim-time list index,
	// which is ambiguous once indexes shift. Re-key them by flight ID here so
	// business logic never sees the old shape.
	for id, flight := range mission.Flights {
		if flight.ClaimedFromSlot == nil {
			continue
		}
		if _, ok := mission.OriginalSlots[id]; ok {
			continue
		}
		oldKey := strconv.Itoa(*flight.ClaimedFromSlot)
		if slot, ok := mission.OriginalSlots[oldKey]; ok {
			mission.OriginalSlots[id] = slot
			delete(mission.OriginalSlots, oldKey)
		}
	}

	if mission.Flights == nil {
		mission.Flights = make(map[string]*entities.Flight)
	}
	return &mission, nil
}
