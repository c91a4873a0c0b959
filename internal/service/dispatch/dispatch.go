package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/pkg/logger"
)

// Dispatch assigns newly created delivery orders to riders. One invocation
// loads the order, builds an ordered list of candidate zones (closest to the
// pickup address first, with a sticky preference for a previously recorded
// zone), then walks the zones looking for the least-busy online rider and
// claims the order for the first one found.
type Dispatch struct {
	repository      OrderRepository
	riders          RiderRepository
	zones           ZoneRepository
	oracle          DistanceOracle
	deadlineFactory DeadlineFactory
	txManager       TxManager
	maxActiveOrders int
	log             dispatchLogger
}

func New(
	repository OrderRepository,
	riders RiderRepository,
	zones ZoneRepository,
	oracle DistanceOracle,
	deadlineFactory DeadlineFactory,
	txManager TxManager,
	maxActiveOrders int,
	log dispatchLogger,
) *Dispatch {
	return &Dispatch{
		repository:      repository,
		riders:          riders,
		zones:           zones,
		oracle:          oracle,
		deadlineFactory: deadlineFactory,
		txManager:       txManager,
		maxActiveOrders: maxActiveOrders,
		log:             log,
	}
}

func (d *Dispatch) AssignRider(ctx context.Context, orderID string) (*Result, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := d.repository.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load order: %w", err)
	}

	// A rider already accepted: duplicate invocations must be no-ops.
	if order.AssignmentStatus == entities.AssignmentAccepted {
		return &Result{Outcome: OutcomeAlreadyAccepted}, nil
	}

	activeZones, err := d.zones.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active zones: %w", err)
	}
	if len(activeZones) == 0 {
		return &Result{Outcome: OutcomeNoActiveZones}, nil
	}

	candidates, result, err := d.candidateZones(ctx, order, activeZones)
	if err != nil {
		return nil, err
	}
	if result != nil {
		return result, nil
	}

	return d.searchZones(ctx, order, candidates)
}

// candidateZones builds the ordered zone list for the rider search. A
// non-nil Result short-circuits the operation (zone undeterminable).
func (d *Dispatch) candidateZones(ctx context.Context, order *entities.Order, activeZones []entities.Zone) ([]entities.Zone, *Result, error) {
	sticky, others := splitSticky(order, activeZones)

	if sticky != nil {
		// The sticky zone always goes first regardless of current
		// distances. When ranking the rest fails, the sticky zone alone
		// is tried; the fallbacks are dropped, not guessed.
		ranked := d.oracle.RankZonesByDistance(ctx, order.PickupAddress, others)

		candidates := make([]entities.Zone, 0, len(ranked)+1)
		candidates = append(candidates, *sticky)
		for _, zd := range ranked {
			candidates = append(candidates, zd.Zone)
		}
		return candidates, nil, nil
	}

	ranked := d.oracle.RankZonesByDistance(ctx, order.PickupAddress, activeZones)
	if len(ranked) == 0 {
		// Without any usable distance there is no defensible zone choice.
		// Assigning blindly would park the order in a possibly distant
		// zone, so the order stays untouched for a later retry.
		return nil, &Result{Outcome: OutcomeZoneUndeterminable}, nil
	}

	// Seed the home zone right away so a failed rider search still leaves
	// the order with a stable zone for the next attempt.
	closest := ranked[0].Zone
	if err := d.repository.SetPickupZone(ctx, order.ID, closest.ID); err != nil {
		return nil, nil, fmt.Errorf("seed pickup zone: %w", err)
	}

	candidates := make([]entities.Zone, 0, len(ranked))
	for _, zd := range ranked {
		candidates = append(candidates, zd.Zone)
	}
	return candidates, nil, nil
}

func (d *Dispatch) searchZones(ctx context.Context, order *entities.Order, candidates []entities.Zone) (*Result, error) {
	for _, candidate := range candidates {
		var assigned *Result

		err := d.txManager.Do(ctx, func(ctx context.Context) error {
			rider, err := d.riders.GetEligibleForAssignment(ctx, candidate.ID, d.maxActiveOrders)
			if err != nil {
				return fmt.Errorf("find eligible rider: %w", err)
			}

			assignedAt := time.Now().UTC()
			timeoutAt := d.deadlineFactory.CalculateTimeout(assignedAt)

			claim := entities.AssignmentClaim{
				OrderID:         order.ID,
				RiderID:         rider.ID,
				ZoneID:          candidate.ID,
				AssignedAt:      assignedAt,
				TimeoutAt:       timeoutAt,
				ExpectedStatus:  order.AssignmentStatus,
				ExpectedRiderID: order.AssignedRiderID,
			}
			if err := d.repository.Claim(ctx, claim); err != nil {
				return fmt.Errorf("claim order: %w", err)
			}

			assigned = &Result{
				Outcome:    OutcomeAssigned,
				RiderID:    rider.ID,
				ZoneID:     candidate.ID,
				ZoneName:   candidate.Name,
				AssignedAt: assignedAt,
				TimeoutAt:  timeoutAt,
			}
			return nil
		})

		switch {
		case err == nil:
			return assigned, nil
		case errors.Is(err, ErrNoEligibleRiders):
			continue
		case errors.Is(err, ErrAssignmentConflict):
			return nil, err
		case repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure):
			// A serialization abort on this order means a concurrent
			// invocation claimed it between our read and our write.
			return nil, ErrAssignmentConflict
		default:
			// One zone's infrastructure hiccup must not abort the whole
			// search; the remaining zones may still yield a rider.
			d.log.With(
				logger.NewField("order", order.ID),
				logger.NewField("zone", candidate.ID),
				logger.NewField("error", err),
			).Warn("rider search failed in zone, trying next")
			continue
		}
	}

	return &Result{Outcome: OutcomeNoRidersAvailable}, nil
}

// ReleaseAssignment reverts an unaccepted assignment, e.g. when the order
// was cancelled before the rider accepted.
func (d *Dispatch) ReleaseAssignment(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	err := d.repository.Release(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrNoActiveAssignment) {
			return err
		}
		return fmt.Errorf("release assignment: %w", err)
	}
	return nil
}

// ReleaseExpiredAssignments frees every order whose rider never accepted
// before the deadline, returning the number of released orders.
func (d *Dispatch) ReleaseExpiredAssignments(ctx context.Context) (int64, error) {
	released, err := d.repository.ReleaseExpired(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("release timed out: %w", err)
		}
		return 0, fmt.Errorf("release expired assignments: %w", err)
	}

	return released, nil
}

// splitSticky finds the previously recorded pickup zone among the active
// zones. A recorded zone that is no longer active gets no preference.
func splitSticky(order *entities.Order, activeZones []entities.Zone) (*entities.Zone, []entities.Zone) {
	if order.PickupZoneID == nil {
		return nil, activeZones
	}

	var sticky *entities.Zone
	others := make([]entities.Zone, 0, len(activeZones))
	for i := range activeZones {
		if activeZones[i].ID == *order.PickupZoneID {
			sticky = &activeZones[i]
			continue
		}
		others = append(others, activeZones[i])
	}

	if sticky == nil {
		return nil, activeZones
	}
	return sticky, others
}
