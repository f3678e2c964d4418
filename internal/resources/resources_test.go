package resources

import (
	"testing"

	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
)

func TestAllocCallsignPair_FirstFlight(t *testing.T) {
	ledger := entities.NewResourceLedger()

	callsign, number, err := AllocCallsignPair(&ledger, "331", []string{"VIPER", "COBRA"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if callsign != "VIPER" {
		t.Errorf("Expected callsign VIPER, got %s", callsign)
	}
	if number != 0 {
		t.Errorf("Expected flight number 0, got %d", number)
	}
	if !ledger.CallsignUsed("331", "VIPER") {
		t.Error("Expected VIPER to be marked used for 331")
	}
}

func TestAllocCallsignPair_SingleEntryBankIncrementsNumber(t *testing.T) {
	ledger := entities.NewResourceLedger()
	bank := []string{"VIPER"}

	if _, n, err := AllocCallsignPair(&ledger, "331", bank); err != nil || n != 0 {
		t.Fatalf("First allocation: number=%d err=%v", n, err)
	}

	// The bank has one word, so the second flight reuses VIPER under the
	// next free number.
	callsign, number, err := AllocCallsignPair(&ledger, "331", bank)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if callsign != "VIPER" || number != 1 {
		t.Errorf("Expected VIPER/1, got %s/%d", callsign, number)
	}
}

func TestAllocCallsignPair_SecondFlightGetsNextNumber(t *testing.T) {
	ledger := entities.NewResourceLedger()
	bank := []string{"VIPER", "COBRA"}

	if _, _, err := AllocCallsignPair(&ledger, "331", bank); err != nil {
		t.Fatal(err)
	}
	callsign, number, err := AllocCallsignPair(&ledger, "331", bank)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if callsign != "COBRA" || number != 1 {
		t.Errorf("Expected COBRA/1, got %s/%d", callsign, number)
	}
}

func TestAllocCallsignPair_SquadronScoping(t *testing.T) {
	ledger := entities.NewResourceLedger()

	_, n1, err := AllocCallsignPair(&ledger, "331", []string{"VIPER"})
	if err != nil {
		t.Fatal(err)
	}
	_, n2, err := AllocCallsignPair(&ledger, "338", []string{"VIPER"})
	if err != nil {
		t.Fatalf("Other squadron should allocate independently: %v", err)
	}
	if n1 != 0 || n2 != 0 {
		t.Errorf("Both squadrons should get number 0, got %d and %d", n1, n2)
	}
}

func TestAllocCallsignPair_ExhaustionAfterNineFlights(t *testing.T) {
	ledger := entities.NewResourceLedger()
	bank := []string{"VIPER"}

	seen := make(map[string]bool)
	for i := 0; i < 9; i++ {
		callsign, number, err := AllocCallsignPair(&ledger, "331", bank)
		if err != nil {
			t.Fatalf("Allocation %d failed: %v", i, err)
		}
		key := callsign + string(rune('0'+number))
		if seen[key] {
			t.Fatalf("Duplicate pair issued: %s", key)
		}
		seen[key] = true
	}

	_, _, err := AllocCallsignPair(&ledger, "331", bank)
	if err == nil {
		t.Fatal("Expected exhaustion after nine flights")
	}
	if constants.KindOf(err) != constants.ErrResourceExhausted {
		t.Errorf("Expected resource_exhausted, got %s", constants.KindOf(err))
	}
}

func TestTransponderBlock_CAPPrefix(t *testing.T) {
	prefixes := map[string]string{"CAP": "64"}

	codes := TransponderBlock(prefixes, "CAP", 0)
	want := []string{"6400", "6401", "6402", "6403"}
	for i, w := range want {
		if codes[i] != w {
			t.Errorf("Code %d: expected %s, got %s", i, w, codes[i])
		}
	}
}

func TestTransponderBlock_OctalOffsets(t *testing.T) {
	codes := TransponderBlock(nil, "STRIKE", 2)
	// Block start 8 is 10 octal.
	want := []string{"0010", "0011", "0012", "0013"}
	for i, w := range want {
		if codes[i] != w {
			t.Errorf("Code %d: expected %s, got %s", i, w, codes[i])
		}
	}
}

func TestAllocTransponderBlock_CrossSquadronCollision(t *testing.T) {
	ledger := entities.NewResourceLedger()
	prefixes := map[string]string{"CAP": "64"}

	if _, err := AllocTransponderBlock(&ledger, prefixes, "CAP", 0); err != nil {
		t.Fatal(err)
	}
	// A second squadron with the same mission type and flight number derives
	// the same block; the ledger must reject it.
	_, err := AllocTransponderBlock(&ledger, prefixes, "CAP", 0)
	if err == nil {
		t.Fatal("Expected collision on duplicate block")
	}
	if constants.KindOf(err) != constants.ErrResourceExhausted {
		t.Errorf("Expected resource_exhausted, got %s", constants.KindOf(err))
	}
}

func TestAllocTacan_SkipsUsedAndExhausts(t *testing.T) {
	ledger := entities.NewResourceLedger()
	bank := []string{"29X", "29Y"}

	ch1, err := AllocTacan(&ledger, bank)
	if err != nil || ch1 != "29X" {
		t.Fatalf("Expected 29X, got %s (%v)", ch1, err)
	}
	ch2, err := AllocTacan(&ledger, bank)
	if err != nil || ch2 != "29Y" {
		t.Fatalf("Expected 29Y, got %s (%v)", ch2, err)
	}
	if _, err := AllocTacan(&ledger, bank); constants.KindOf(err) != constants.ErrResourceExhausted {
		t.Errorf("Expected resource_exhausted, got %v", err)
	}
}

func TestDefaultTacanBank(t *testing.T) {
	bank := DefaultTacanBank()
	if len(bank) != 252 {
		t.Fatalf("Expected 252 channels, got %d", len(bank))
	}
	if bank[0] != "1X" || bank[125] != "126X" || bank[126] != "1Y" {
		t.Errorf("Unexpected bank ordering: %s %s %s", bank[0], bank[125], bank[126])
	}
}

func TestAllocFrequency_SkipsReserved(t *testing.T) {
	ledger := entities.NewResourceLedger()
	candidates := []string{"243.000", "140.25", "141.50"}
	reserved := []string{"243.000"}

	freq, err := AllocFrequency(&ledger, candidates, reserved)
	if err != nil {
		t.Fatal(err)
	}
	if freq != "140.25" {
		t.Errorf("Expected 140.25, got %s", freq)
	}
}

func TestAllocFrequency_Exhaustion(t *testing.T) {
	ledger := entities.NewResourceLedger()
	if _, err := AllocFrequency(&ledger, nil, nil); constants.KindOf(err) != constants.ErrResourceExhausted {
		t.Errorf("Expected resource_exhausted, got %v", err)
	}
}

func TestAllocateBundle_Success(t *testing.T) {
	ledger := entities.NewResourceLedger()

	alloc, updated, err := AllocateBundle(ledger, BundleInput{
		Squadron:            "331",
		CallsignBank:        []string{"VIPER", "COBRA"},
		MissionType:         "CAP",
		TransponderPrefixes: map[string]string{"CAP": "64"},
		TacanBank:           []string{"29X"},
		FrequencyBank:       []string{"140.25"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if alloc.Callsign != "VIPER" || alloc.FlightNumber != 0 {
		t.Errorf("Unexpected pair: %s/%d", alloc.Callsign, alloc.FlightNumber)
	}
	if alloc.TransponderCodes[0] != "6400" {
		t.Errorf("Expected block start 6400, got %s", alloc.TransponderCodes[0])
	}
	if alloc.TacanChannel != "29X" || alloc.IntraflightFreq != "140.25" {
		t.Errorf("Unexpected tacan/freq: %s/%s", alloc.TacanChannel, alloc.IntraflightFreq)
	}
	if !updated.TransponderBlockUsed("6400") || !updated.TacanUsed("29X") || !updated.FrequencyUsed("140.25") {
		t.Error("Updated ledger missing reservations")
	}
}

func TestAllocateBundle_AtomicOnFailure(t *testing.T) {
	ledger := entities.NewResourceLedger()

	// TACAN bank empty after one use: second bundle must fail without
	// consuming a callsign pair or transponder block.
	in := BundleInput{
		Squadron:      "331",
		CallsignBank:  []string{"VIPER", "COBRA"},
		TacanBank:     []string{"29X"},
		FrequencyBank: []string{"140.25", "141.50"},
	}
	_, updated, err := AllocateBundle(ledger, in)
	if err != nil {
		t.Fatal(err)
	}

	_, after, err := AllocateBundle(updated, in)
	if err == nil {
		t.Fatal("Expected TACAN exhaustion")
	}
	if constants.KindOf(err) != constants.ErrResourceExhausted {
		t.Errorf("Expected resource_exhausted, got %s", constants.KindOf(err))
	}
	// The returned ledger must equal the pre-call ledger: exactly one pair,
	// one block, one channel, one frequency consumed by the first bundle.
	if len(after.Callsigns["331"]) != 1 || len(after.TransponderBlocks) != 1 ||
		len(after.TacanChannels) != 1 || len(after.Frequencies) != 1 {
		t.Errorf("Failed bundle leaked reservations: %+v", after)
	}
}
