// Package campaign orchestrates the per-campaign decision loop: recording
// round outcomes into the allocation posterior, serving next-round
// allocations, and sizing upcoming rounds from observed yields.
package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"namelab/business/allocation"
	"namelab/business/planner"
	"namelab/domain"
	"namelab/pkg/logger"
)

// SchemaVersion tags every sidecar event this service emits.
const SchemaVersion = "1.0"

// ---- Repository interfaces ----

type StateRepository interface {
	GetState(ctx context.Context, campaign string) (*allocation.State, error)
	SaveState(ctx context.Context, campaign string, state allocation.State) error
	DeleteState(ctx context.Context, campaign string) error
}

type RoundRepository interface {
	SaveRound(ctx context.Context, round domain.CampaignRound) error
	FindByCampaign(ctx context.Context, campaign string) ([]domain.CampaignRound, error)
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.SidecarEvent) error
}

// ---- Service ----

type Service struct {
	stateRepo StateRepository
	roundRepo RoundRepository
	eventRepo EventRepository

	seed             int64
	explorationFloor float64
}

func NewService(
	stateRepo StateRepository,
	roundRepo RoundRepository,
	eventRepo EventRepository,
	seed int64,
	explorationFloor float64,
) *Service {
	return &Service{
		stateRepo:        stateRepo,
		roundRepo:        roundRepo,
		eventRepo:        eventRepo,
		seed:             seed,
		explorationFloor: explorationFloor,
	}
}

// loadController rebuilds the campaign's controller, starting fresh from the
// configured seed when no state was stored yet.
func (s *Service) loadController(ctx context.Context, campaign string) (*allocation.Controller, error) {
	state, err := s.stateRepo.GetState(ctx, campaign)
	if err != nil {
		return nil, fmt.Errorf("load campaign state: %w", err)
	}
	if state == nil {
		return allocation.NewWithFloor(s.seed, s.explorationFloor), nil
	}
	return allocation.FromState(*state), nil
}

// RecordRound folds one round's per-pattern outcomes into the posterior,
// appends the audit trail, and persists the updated state. Invalid outcomes
// fail before anything is written.
func (s *Service) RecordRound(ctx context.Context, campaign, round string, outcomes []domain.RoundOutcome) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if campaign == "" {
		return fmt.Errorf("campaign name is required")
	}
	if len(outcomes) == 0 {
		return fmt.Errorf("at least one pattern outcome is required")
	}

	ctrl, err := s.loadController(ctx, campaign)
	if err != nil {
		return err
	}

	for _, outcome := range outcomes {
		if err := ctrl.Update(outcome.Pattern, outcome.NAvailable, outcome.NChecked); err != nil {
			return fmt.Errorf("update posterior for pattern %s: %w", outcome.Pattern, err)
		}
	}

	runDate := time.Now().Format("2006-01-02")
	for _, outcome := range outcomes {
		if err := s.roundRepo.SaveRound(ctx, domain.CampaignRound{
			Campaign:   campaign,
			Round:      round,
			Pattern:    string(outcome.Pattern),
			NChecked:   outcome.NChecked,
			NAvailable: outcome.NAvailable,
		}); err != nil {
			return fmt.Errorf("save round outcome: %w", err)
		}

		if err := s.eventRepo.SaveEvent(ctx, domain.SidecarEvent{
			SchemaVersion: SchemaVersion,
			EventID:       uuid.NewString(),
			Business:      campaign,
			Round:         round,
			RunDate:       runDate,
			Stage:         "round-outcome",
			Candidate:     string(outcome.Pattern),
			Payload: datatypes.JSONMap{
				"n_checked":   outcome.NChecked,
				"n_available": outcome.NAvailable,
			},
		}); err != nil {
			return fmt.Errorf("save sidecar event: %w", err)
		}
	}

	if err := s.stateRepo.SaveState(ctx, campaign, ctrl.State()); err != nil {
		return fmt.Errorf("save campaign state: %w", err)
	}

	logger.Debug("round recorded",
		"campaign", campaign,
		"round", round,
		"patterns", len(outcomes),
	)
	return nil
}

// NextAllocation returns the per-pattern split for the next totalN
// candidates. The posterior itself is unchanged by allocation.
func (s *Service) NextAllocation(ctx context.Context, campaign string, totalN int) (map[domain.Pattern]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	ctrl, err := s.loadController(ctx, campaign)
	if err != nil {
		return nil, err
	}

	alloc, err := ctrl.Allocate(totalN)
	if err != nil {
		return nil, err
	}

	logger.Debug("allocation served", "campaign", campaign, "total_n", totalN)
	return alloc, nil
}

// Plan sizes the next round from the campaign's recorded yield history.
// A campaign with no recorded rounds fails fast: there is no sensible
// default yield to assume.
func (s *Service) Plan(ctx context.Context, campaign string, k int, confidence float64) (planner.YieldPlan, error) {
	if err := ctx.Err(); err != nil {
		return planner.YieldPlan{}, fmt.Errorf("context error: %w", err)
	}

	rounds, err := s.roundRepo.FindByCampaign(ctx, campaign)
	if err != nil {
		return planner.YieldPlan{}, fmt.Errorf("load round history: %w", err)
	}

	var yields []float64
	for _, r := range rounds {
		if r.NChecked > 0 {
			yields = append(yields, r.Yield())
		}
	}

	return planner.PlanFromHistory(yields, k, confidence)
}

// State exposes the stored posterior for audit. nil when the campaign has no
// recorded state yet.
func (s *Service) State(ctx context.Context, campaign string) (*allocation.State, error) {
	return s.stateRepo.GetState(ctx, campaign)
}

// ResetState drops a campaign's posterior. The next update starts from the
// Beta(2,2) priors again.
func (s *Service) ResetState(ctx context.Context, campaign string) error {
	if err := s.stateRepo.DeleteState(ctx, campaign); err != nil {
		return fmt.Errorf("reset campaign state: %w", err)
	}
	logger.Info("campaign state reset", "campaign", campaign)
	return nil
}
