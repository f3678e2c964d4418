package repositories

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

func setupORM(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.Campaign{}, &entities.SquadronRecord{}, &entities.User{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestCampaignRepository_SquadronRoundTrip(t *testing.T) {
	repo := NewCampaignRepository(setupORM(t))
	ctx := context.Background()

	sq := &entities.Squadron{
		ID:           "331",
		Name:         "331 SQN",
		AircraftType: "F-16C",
		Callsigns:    []string{"VIPER", "COBRA"},
		Aircraft: map[string]entities.Airframe{
			"658": {Tail: "658", Type: "F-16C", Squadron: "331", Location: "ENBO", State: 1},
		},
	}
	if err := repo.SaveSquadron(ctx, "PP15", sq); err != nil {
		t.Fatalf("SaveSquadron failed: %v", err)
	}

	squadrons, err := repo.GetSquadrons(ctx, "PP15")
	if err != nil {
		t.Fatalf("GetSquadrons failed: %v", err)
	}
	got, ok := squadrons["331"]
	if !ok {
		t.Fatal("Expected squadron 331 in roster")
	}
	if len(got.Callsigns) != 2 || got.Callsigns[0] != "VIPER" {
		t.Errorf("Callsign bank mismatch: %v", got.Callsigns)
	}
	if !got.HasAircraft("658") {
		t.Error("Expected tail 658 in inventory")
	}
	if got.Aircraft["658"].Location != "ENBO" {
		t.Errorf("Expected location ENBO, got %s", got.Aircraft["658"].Location)
	}
}

func TestCampaignRepository_SaveSquadronUpdatesExisting(t *testing.T) {
	repo := NewCampaignRepository(setupORM(t))
	ctx := context.Background()

	sq := &entities.Squadron{ID: "331", Name: "331 SQN", Callsigns: []string{"VIPER"}}
	if err := repo.SaveSquadron(ctx, "PP15", sq); err != nil {
		t.Fatal(err)
	}

	sq.Callsigns = []string{"VIPER", "FURY"}
	if err := repo.SaveSquadron(ctx, "PP15", sq); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	squadrons, err := repo.GetSquadrons(ctx, "PP15")
	if err != nil {
		t.Fatal(err)
	}
	if len(squadrons) != 1 {
		t.Fatalf("Expected one squadron after upsert, got %d", len(squadrons))
	}
	if len(squadrons["331"].Callsigns) != 2 {
		t.Errorf("Expected updated bank, got %v", squadrons["331"].Callsigns)
	}
}

func TestCampaignRepository_GetCampaignNotFound(t *testing.T) {
	repo := NewCampaignRepository(setupORM(t))

	_, err := repo.GetCampaign(context.Background(), "NOPE")
	if err == nil {
		t.Fatal("Expected error for missing campaign")
	}
}

func TestUserRepository_UpsertRegistersAndRefreshes(t *testing.T) {
	repo := NewUserRepository(setupORM(t))
	ctx := context.Background()

	created, err := repo.Upsert(ctx, "1234", "BANDIT")
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if created.DisplayName != "BANDIT" {
		t.Errorf("Expected BANDIT, got %s", created.DisplayName)
	}

	updated, err := repo.Upsert(ctx, "1234", "SNAKE")
	if err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}
	if updated.DisplayName != "SNAKE" {
		t.Errorf("Expected refreshed name SNAKE, got %s", updated.DisplayName)
	}

	fetched, err := repo.GetByDiscordID(ctx, "1234")
	if err != nil {
		t.Fatal(err)
	}
	if fetched.ID != created.ID {
		t.Error("Upsert should not create a second row")
	}
}
