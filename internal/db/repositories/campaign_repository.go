package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// GetCampaign fetches a campaign by its shorthand ID.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*entities.Campaign, error) {
	var campaign entities.Campaign

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaign).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, constants.OpErrorf(constants.ErrNotFound, "campaign %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch campaign: %w", err)
	}

	return &campaign, nil
}

// ListCampaigns returns all campaigns, newest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	var campaigns []entities.Campaign
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// SaveCampaign upserts a campaign record.
func (r *CampaignRepository) SaveCampaign(ctx context.Context, campaign *entities.Campaign) error {
	if err := r.db.WithContext(ctx).Save(campaign).Error; err != nil {
		return fmt.Errorf("failed to save campaign: %w", err)
	}
	return nil
}

// GetSquadrons decodes the campaign's squadron roster, callsign banks and
// aircraft inventories included.
func (r *CampaignRepository) GetSquadrons(ctx context.Context, campaignID string) (map[string]*entities.Squadron, error) {
	var records []entities.SquadronRecord

	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch squadrons for %s: %w", campaignID, err)
	}

	squadrons := make(map[string]*entities.Squadron, len(records))
	for _, rec := range records {
		sq, err := decodeSquadronRecord(&rec)
		if err != nil {
			return nil, fmt.Errorf("decode squadron %s/%s: %w", campaignID, rec.SquadronID, err)
		}
		squadrons[sq.ID] = sq
	}
	return squadrons, nil
}

// SaveSquadron encodes and upserts one squadron of a campaign.
func (r *CampaignRepository) SaveSquadron(ctx context.Context, campaignID string, sq *entities.Squadron) error {
	callsigns, err := json.Marshal(sq.Callsigns)
	if err != nil {
		return fmt.Errorf("encode callsigns: %w", err)
	}
	aircraft, err := json.Marshal(sq.Aircraft)
	if err != nil {
		return fmt.Errorf("encode aircraft: %w", err)
	}

	record := entities.SquadronRecord{
		CampaignID:   campaignID,
		SquadronID:   sq.ID,
		Name:         sq.Name,
		AircraftType: sq.AircraftType,
		CallsignsRaw: string(callsigns),
		AircraftRaw:  string(aircraft),
	}

	var existing entities.SquadronRecord
	err = r.db.WithContext(ctx).
		Where("campaign_id = ? AND squadron_id = ?", campaignID, sq.ID).
		First(&existing).Error
	switch {
	case err == nil:
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(&record).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(&record).Error
	default:
		return fmt.Errorf("failed to fetch squadron: %w", err)
	}
}

func decodeSquadronRecord(rec *entities.SquadronRecord) (*entities.Squadron, error) {
	sq := &entities.Squadron{
		ID:           rec.SquadronID,
		Name:         rec.Name,
		AircraftType: rec.AircraftType,
		Aircraft:     make(map[string]entities.Airframe),
	}
	if rec.CallsignsRaw != "" {
		if err := json.Unmarshal([]byte(rec.CallsignsRaw), &sq.Callsigns); err != nil {
			return nil, err
		}
	}
	if rec.AircraftRaw != "" {
		if err := json.Unmarshal([]byte(rec.AircraftRaw), &sq.Aircraft); err != nil {
			return nil, err
		}
	}
	return sq, nil
}
