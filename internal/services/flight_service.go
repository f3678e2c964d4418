package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SupremeBender/ajac-website/internal/common"
	"github.com/SupremeBender/ajac-website/internal/constants"
	"github.com/SupremeBender/ajac-website/internal/logging"
	"github.com/SupremeBender/ajac-website/internal/metrics"
	"github.com/SupremeBender/ajac-website/internal/models/dtos/requests"
	"github.com/SupremeBender/ajac-website/internal/models/entities"
	"github.com/SupremeBender/ajac-website/internal/resources"
)

// FlightService implements the flight operations of a mission: creating
// flights (from the form or a curated slot), joining as wingman and leaving.
// Every operation is one guarded load-mutate-save on the mission document.
type FlightService struct {
	mutator  missionMutator
	catalog  *CatalogService
	airspace *AirspaceService
	banks    *BanksService
	metrics  *metrics.MetricsRegistry
}

func NewFlightService(store MissionStore, locker common.MissionLocker, catalog *CatalogService, airspace *AirspaceService, banks *BanksService, m *metrics.MetricsRegistry) *FlightService {
	return &FlightService{
		mutator:  missionMutator{store: store, locker: locker, metrics: m},
		catalog:  catalog,
		airspace: airspace,
		banks:    banks,
		metrics:  m,
	}
}

func (s *FlightService) countFailure(err error) error {
	if err != nil && s.metrics != nil {
		s.metrics.AllocationFailuresTotal.WithLabelValues(string(constants.KindOf(err))).Inc()
	}
	return err
}

// CreateFlight builds a new flight from the signup form. The caller becomes
// the flight lead in slot 1. All four resource allocations succeed together
// or the mission document is left untouched.
func (s *FlightService) CreateFlight(ctx context.Context, missionID, userID, displayName string, req *requests.CreateFlightRequest) (*entities.Flight, error) {
	var created *entities.Flight

	_, err := s.mutator.mutate(ctx, missionID, func(m *entities.Mission) error {
		if !m.IsOpen() {
			return constants.OpErrorf(constants.ErrMissionLocked, "%s", constants.MsgMissionNotOpen)
		}
		campaign, err := s.catalog.Campaign(ctx, m.CampaignID)
		if err != nil {
			return err
		}
		sq, err := s.catalog.Squadron(ctx, campaign.ID, req.Squadron)
		if err != nil {
			return err
		}
		if err := s.catalog.ValidateAircraft(sq, m, campaign, req.Aircraft, req.Departure); err != nil {
			return err
		}

		var missing []string
		if req.MissionType == "" {
			missing = append(missing, "mission type")
		}
		if req.Departure == "" {
			missing = append(missing, "departure")
		}
		if req.Recovery == "" {
			missing = append(missing, "recovery")
		}
		if req.OperationsArea == "" {
			missing = append(missing, "operations area")
		}
		if len(missing) > 0 {
			return constants.OpErrorf(constants.ErrMissingFields, "missing required fields: %s", strings.Join(missing, ", "))
		}

		route, err := s.airspace.BuildRoute(req.Departure, req.DepartureProc, req.OperationsArea, req.RecoveryProc, req.Recovery)
		if err != nil {
			return err
		}

		banks, err := s.banks.Banks()
		if err != nil {
			return err
		}

		alloc, ledger, err := resources.AllocateBundle(m.Resources, resources.BundleInput{
			Squadron:            req.Squadron,
			CallsignBank:        sq.Callsigns,
			MissionType:         req.MissionType,
			TransponderPrefixes: banks.TransponderPrefixes,
			TacanBank:           banks.TacanChannels,
			FrequencyBank:       banks.Intraflight,
			ReservedFrequencies: banks.Reserved,
		})
		if err != nil {
			return err
		}

		flight := s.newFlight(m, alloc, req.Squadron, sq.AircraftType, userID, displayName, req.Aircraft)
		flight.MissionType = req.MissionType
		flight.Departure = entities.BaseAssignment{Base: req.Departure, Procedure: req.DepartureProc}
		flight.Recovery = entities.BaseAssignment{Base: req.Recovery, Procedure: req.RecoveryProc}
		flight.OperationsArea = req.OperationsArea
		flight.Remarks = req.Remarks
		flight.Route = route

		m.Resources = ledger
		m.Flights[flight.ID] = flight
		created = flight
		return nil
	})
	if err != nil {
		return nil, s.countFailure(err)
	}

	if s.metrics != nil {
		s.metrics.FlightsCreatedTotal.WithLabelValues("form").Inc()
	}
	logging.Info("Flight created",
		"mission_id", missionID,
		"flight_id", created.ID,
		"callsign", created.TacticalCallsign(),
		"user_id", userID,
	)
	return created, nil
}

// ClaimSlot converts a curated slot into a real flight led by the caller.
// The slot is removed from the open list and snapshotted so it can be
// restored if the flight later dissolves.
func (s *FlightService) ClaimSlot(ctx context.Context, missionID, userID, displayName string, req *requests.ClaimSlotRequest) (*entities.Flight, error) {
	var created *entities.Flight

	_, err := s.mutator.mutate(ctx, missionID, func(m *entities.Mission) error {
		if !m.IsOpen() {
			return constants.OpErrorf(constants.ErrMissionLocked, "%s", constants.MsgMissionNotOpen)
		}
		if req.SlotIndex < 0 || req.SlotIndex >= len(m.CuratedSlots) {
			return constants.OpErrorf(constants.ErrInvalidSlotIndex, "slot index %d is out of range", req.SlotIndex)
		}
		slot := m.CuratedSlots[req.SlotIndex]
		if !slot.EligibleFor(req.Squadron) {
			return constants.OpErrorf(constants.ErrSquadronNotEligible, "squadron %s may not claim this slot", req.Squadron)
		}

		campaign, err := s.catalog.Campaign(ctx, m.CampaignID)
		if err != nil {
			return err
		}
		sq, err := s.catalog.Squadron(ctx, campaign.ID, req.Squadron)
		if err != nil {
			return err
		}
		if err := s.catalog.ValidateAircraft(sq, m, campaign, req.Aircraft, ""); err != nil {
			return err
		}

		// A labelled slot pins the callsign; the allocator still assigns the
		// flight number and records the pair in the ledger.
		bank := sq.Callsigns
		if slot.Label != "" && !slot.UseSquadronCallsigns {
			bank = []string{slot.Label}
		}

		banks, err := s.banks.Banks()
		if err != nil {
			return err
		}

		alloc, ledger, err := resources.AllocateBundle(m.Resources, resources.BundleInput{
			Squadron:            req.Squadron,
			CallsignBank:        bank,
			MissionType:         slot.Role,
			TransponderPrefixes: banks.TransponderPrefixes,
			TacanBank:           banks.TacanChannels,
			FrequencyBank:       banks.Intraflight,
			ReservedFrequencies: banks.Reserved,
		})
		if err != nil {
			return err
		}

		flight := s.newFlight(m, alloc, req.Squadron, sq.AircraftType, userID, displayName, req.Aircraft)
		flight.MissionType = slot.Role
		flight.Remarks = slot.Description

		idx := req.SlotIndex
		flight.ClaimedFromSlot = &idx
		if m.OriginalSlots == nil {
			m.OriginalSlots = make(map[string]entities.CuratedSlot)
		}
		m.OriginalSlots[flight.ID] = slot
		m.CuratedSlots = append(m.CuratedSlots[:idx], m.CuratedSlots[idx+1:]...)

		m.Resources = ledger
		m.Flights[flight.ID] = flight
		created = flight
		return nil
	})
	if err != nil {
		return nil, s.countFailure(err)
	}

	if s.metrics != nil {
		s.metrics.FlightsCreatedTotal.WithLabelValues("slot").Inc()
	}
	logging.Info("Curated slot claimed",
		"mission_id", missionID,
		"flight_id", created.ID,
		"callsign", created.TacticalCallsign(),
		"user_id", userID,
	)
	return created, nil
}

// JoinFlight seats the caller in an open wingman slot (2..4). Joining with
// an airframe based elsewhere is allowed under the persistent-location rule
// but flags the pilot as cross-base.
func (s *FlightService) JoinFlight(ctx context.Context, missionID, userID, displayName string, req *requests.JoinFlightRequest) (*entities.Flight, error) {
	var joined *entities.Flight

	_, err := s.mutator.mutate(ctx, missionID, func(m *entities.Mission) error {
		if !m.IsOpen() {
			return constants.OpErrorf(constants.ErrMissionLocked, "%s", constants.MsgMissionNotOpen)
		}
		flight, ok := m.Flights[req.FlightID]
		if !ok {
			return constants.OpErrorf(constants.ErrNotFound, "%s", constants.MsgFlightNotFound)
		}
		if _, slot := flight.PilotOf(userID); slot != "" {
			return constants.OpErrorf(constants.ErrAlreadyMember, "%s", constants.MsgAlreadyInFlight)
		}
		if other, _ := m.FlightOfUser(userID); other != nil {
			return constants.OpErrorf(constants.ErrAlreadyMember, "you are already in flight %s", other.TacticalCallsign())
		}
		if req.Slot < 2 || req.Slot > constants.MaxSlots {
			return constants.OpErrorf(constants.ErrInvalidSlot, "%s", constants.MsgInvalidPosition)
		}
		slot := strconv.Itoa(req.Slot)
		if _, taken := flight.Pilots[slot]; taken {
			return constants.OpErrorf(constants.ErrSlotTaken, "position %d is already taken", req.Slot)
		}

		campaign, err := s.catalog.Campaign(ctx, m.CampaignID)
		if err != nil {
			return err
		}
		sq, err := s.catalog.Squadron(ctx, campaign.ID, flight.Squadron)
		if err != nil {
			return err
		}
		if err := s.catalog.ValidateAircraft(sq, m, campaign, req.Aircraft, ""); err != nil {
			return err
		}
		crossBase := campaign.PersistentAircraftLocation &&
			flight.Departure.Base != "" &&
			sq.Aircraft[req.Aircraft].Location != flight.Departure.Base

		flight.Pilots[slot] = &entities.Pilot{
			UserID:      userID,
			DisplayName: displayName,
			Slot:        slot,
			Callsign:    flight.PilotCallsign(slot),
			Transponder: flight.TransponderForSlot(slot),
			Aircraft:    req.Aircraft,
			CrossBase:   crossBase,
			JoinedAt:    time.Now().UTC(),
		}
		joined = flight
		return nil
	})
	if err != nil {
		return nil, s.countFailure(err)
	}

	if s.metrics != nil {
		s.metrics.FlightJoinsTotal.Inc()
	}
	logging.Info("Pilot joined flight",
		"mission_id", missionID,
		"flight_id", joined.ID,
		"slot", req.Slot,
		"user_id", userID,
	)
	return joined, nil
}

// LeaveFlight removes the caller from their slot. A departing lead hands the
// flight to the lowest remaining slot; the last pilot out dissolves the
// flight and restores its curated slot if it was claimed from one. Allocated
// resources stay consumed for the rest of the mission.
func (s *FlightService) LeaveFlight(ctx context.Context, missionID, flightID, userID string) (string, error) {
	message := constants.MsgLeftFlight

	_, err := s.mutator.mutate(ctx, missionID, func(m *entities.Mission) error {
		if !m.IsOpen() {
			return constants.OpErrorf(constants.ErrMissionLocked, "%s", constants.MsgMissionNotOpen)
		}
		flight, ok := m.Flights[flightID]
		if !ok {
			return constants.OpErrorf(constants.ErrNotFound, "%s", constants.MsgFlightNotFound)
		}
		_, slot := flight.PilotOf(userID)
		if slot == "" {
			return constants.OpErrorf(constants.ErrNotMember, "%s", constants.MsgNotInFlight)
		}

		delete(flight.Pilots, slot)

		if len(flight.Pilots) == 0 {
			delete(m.Flights, flightID)
			s.restoreCuratedSlot(m, flight)
			message = constants.MsgFlightDeleted
			return nil
		}

		if slot == constants.SlotLead {
			s.promoteLead(flight)
		}
		return nil
	})
	if err != nil {
		return "", s.countFailure(err)
	}

	if s.metrics != nil {
		s.metrics.FlightLeavesTotal.Inc()
	}
	logging.Info("Pilot left flight",
		"mission_id", missionID,
		"flight_id", flightID,
		"user_id", userID,
	)
	return message, nil
}

func (s *FlightService) newFlight(m *entities.Mission, alloc resources.Allocation, squadron, aircraftType, userID, displayName, tail string) *entities.Flight {
	flight := &entities.Flight{
		ID:               uuid.New().String(),
		MissionID:        m.ID,
		Squadron:         squadron,
		Callsign:         alloc.Callsign,
		FlightNumber:     alloc.FlightNumber,
		AircraftType:     aircraftType,
		TransponderCodes: alloc.TransponderCodes,
		TacanChannel:     alloc.TacanChannel,
		IntraflightFreq:  alloc.IntraflightFreq,
		Pilots:           make(map[string]*entities.Pilot),
		Status:           constants.FlightStatusActive,
		Side:             constants.SideBlue,
		CreatedAt:        time.Now().UTC(),
	}
	flight.Pilots[constants.SlotLead] = &entities.Pilot{
		UserID:      userID,
		DisplayName: displayName,
		Slot:        constants.SlotLead,
		Callsign:    flight.PilotCallsign(constants.SlotLead),
		Transponder: flight.TransponderForSlot(constants.SlotLead),
		Aircraft:    tail,
		JoinedAt:    time.Now().UTC(),
	}
	return flight
}

// promoteLead moves the lowest occupied slot into slot 1. The pilot keeps
// the callsign and transponder issued at join time; external displays key
// on those, so only the position changes.
func (s *FlightService) promoteLead(flight *entities.Flight) {
	slots := flight.OccupiedSlots()
	if len(slots) == 0 {
		return
	}
	next := slots[0]
	pilot := flight.Pilots[next]
	delete(flight.Pilots, next)

	pilot.Slot = constants.SlotLead
	flight.Pilots[constants.SlotLead] = pilot
}

// restoreCuratedSlot puts a claimed slot back on the open list when the
// flight that claimed it dissolves, at its original position where possible.
// Snapshots are keyed by flight ID; the claim-time index only positions the
// restored entry. Documents written without a snapshot get a best-effort
// reconstruction from the dissolving flight instead.
func (s *FlightService) restoreCuratedSlot(m *entities.Mission, flight *entities.Flight) {
	if flight.ClaimedFromSlot == nil {
		return
	}
	slot, ok := m.OriginalSlots[flight.ID]
	if ok {
		delete(m.OriginalSlots, flight.ID)
	} else {
		slot = entities.CuratedSlot{
			Label:             flight.Callsign,
			EligibleSquadrons: []string{flight.Squadron},
			Role:              flight.MissionType,
			Seats:             constants.MaxSlots,
			Description:       flight.Remarks,
		}
	}

	idx := *flight.ClaimedFromSlot
	if idx > len(m.CuratedSlots) {
		idx = len(m.CuratedSlots)
	}
	m.CuratedSlots = append(m.CuratedSlots[:idx], append([]entities.CuratedSlot{slot}, m.CuratedSlots[idx:]...)...)
}
