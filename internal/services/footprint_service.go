package services

import (
	"encoding/json"
	"fmt"
	"log"

	"carbontrack/internal/calculator"
	"carbontrack/internal/models"
	"carbontrack/internal/repositories"
	"carbontrack/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
)

// FootprintService runs the full calculate-and-persist flow: validate the
// request, run the three scope calculators, aggregate, save, and publish a
// footprint-created event. Validation happens before any calculation, so a
// bad request never produces a partial record.
type FootprintService struct {
	footprintRepo repositories.FootprintRepository
	mqClient      *rabbitmq.Client
	validate      *validator.Validate
}

// NewFootprintService creates a new FootprintService. mqClient may be nil;
// event publication is then skipped.
func NewFootprintService(footprintRepo repositories.FootprintRepository, mqClient *rabbitmq.Client) *FootprintService {
	return &FootprintService{
		footprintRepo: footprintRepo,
		mqClient:      mqClient,
		validate:      validator.New(),
	}
}

// Calculate computes and persists a footprint record for the user.
func (s *FootprintService) Calculate(userID int64, input models.CalculationInput) (*models.FootprintRecord, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid calculation input: %w", err)
	}

	scope1, err := calculator.Scope1(input.Scope1)
	if err != nil {
		return nil, fmt.Errorf("scope 1 calculation failed: %w", err)
	}
	scope2, err := calculator.Scope2(input.Scope2)
	if err != nil {
		return nil, fmt.Errorf("scope 2 calculation failed: %w", err)
	}
	scope3, err := calculator.Scope3(input.Scope3)
	if err != nil {
		return nil, fmt.Errorf("scope 3 calculation failed: %w", err)
	}

	record, err := calculator.Aggregate(userID, scope1, scope2, scope3)
	if err != nil {
		return nil, err
	}

	saved, err := s.footprintRepo.Save(record)
	if err != nil {
		return nil, fmt.Errorf("failed to save footprint: %w", err)
	}

	// Event publication is best-effort and must never fail the save.
	if s.mqClient != nil {
		event := map[string]interface{}{
			"footprint_id": saved.ID,
			"user_id":      saved.UserID,
			"total":        saved.TotalEmissions,
			"created_at":   saved.CreatedAt,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal footprint event: %v", err)
		} else if err := s.mqClient.PublishFootprintCreated(body); err != nil {
			log.Printf("Warning: failed to publish footprint created event for record %d: %v", saved.ID, err)
		}
	}

	return saved, nil
}

// History returns all of the user's records in storage order. Calling it
// repeatedly without an intervening save yields the same sequence.
func (s *FootprintService) History(userID int64) ([]models.FootprintRecord, error) {
	return s.footprintRepo.GetByUser(userID)
}

// Latest returns the user's most recent record by creation time, or
// models.ErrNotFound when the user has none.
func (s *FootprintService) Latest(userID int64) (*models.FootprintRecord, error) {
	records, err := s.footprintRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no footprints for user %d: %w", userID, models.ErrNotFound)
	}
	latest := records[0]
	for _, r := range records[1:] {
		if r.CreatedAt > latest.CreatedAt {
			latest = r
		}
	}
	return &latest, nil
}

// Get returns one record owned by the user. A record belonging to someone
// else is reported as not found.
func (s *FootprintService) Get(userID, recordID int64) (*models.FootprintRecord, error) {
	record, err := s.footprintRepo.GetByID(recordID)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, fmt.Errorf("footprint %d: %w", recordID, models.ErrNotFound)
	}
	return record, nil
}
