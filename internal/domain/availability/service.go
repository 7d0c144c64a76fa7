package availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentChecks bounds the per-room availability fan-out.
const maxConcurrentChecks = 8

type AvailabilityService struct {
	repo AvailabilityRepo
}

func NewAvailabilityService(repo AvailabilityRepo) *AvailabilityService {
	return &AvailabilityService{repo: repo}
}

// CheckRoomAvailability reports whether the room is free for the half-open
// range and, if not, what occupies it. Active bookings are checked before
// blocked ranges so the caller can tell a customer conflict from an admin
// block.
func (s *AvailabilityService) CheckRoomAvailability(ctx context.Context, roomID string, r DateRange) (CheckResult, error) {
	return s.checkRoom(ctx, s.repo, roomID, r)
}

func (s *AvailabilityService) checkRoom(ctx context.Context, repo TxAvailabilityRepo, roomID string, r DateRange) (CheckResult, error) {
	booking, err := repo.GetActiveBookingOverlap(ctx, roomID, r)
	if err != nil {
		return CheckResult{}, fmt.Errorf("check booking overlap: %w", err)
	}
	if booking != nil {
		return CheckResult{Status: ConflictBooking, BookingID: &booking.BookingID}, nil
	}

	blocked, err := repo.GetBlockedOverlap(ctx, roomID, r)
	if err != nil {
		return CheckResult{}, fmt.Errorf("check blocked overlap: %w", err)
	}
	if blocked != nil {
		return CheckResult{Status: ConflictBlocked, BlockedRangeID: &blocked.ID}, nil
	}

	return CheckResult{Status: ConflictNone}, nil
}

func (s *AvailabilityService) IsAvailable(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	r, err := NewDateRange(start, end)
	if err != nil {
		return false, err
	}
	result, err := s.CheckRoomAvailability(ctx, roomID, r)
	if err != nil {
		return false, err
	}
	return result.Available(), nil
}

// ComputeAvailableRooms returns the ids of the business's rooms free for
// the range. Per-room checks fan out concurrently.
func (s *AvailabilityService) ComputeAvailableRooms(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]string, error) {
	r, err := NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	roomIDs, err := s.repo.ListRoomIDs(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	var (
		mu        sync.Mutex
		available []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)

	for _, roomID := range roomIDs {
		g.Go(func() error {
			result, err := s.checkRoom(gctx, s.repo, roomID, r)
			if err != nil {
				return err
			}
			if result.Available() {
				mu.Lock()
				available = append(available, roomID)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(available)
	return available, nil
}

// CreateBlockedDate inserts an unavailability window after re-checking for
// conflicts inside the transaction. The re-check gives a precise conflict
// (booking vs blocked range); concurrent overlapping inserts that both pass
// it are stopped by the exclusion constraint on blocked_dates, which the
// repository surfaces as ErrBlockedConflict.
func (s *AvailabilityService) CreateBlockedDate(ctx context.Context, request NewBlockedDate) (BlockedDateRange, error) {
	if err := request.Validate(); err != nil {
		return BlockedDateRange{}, err
	}

	blocked := BlockedDateRange{
		ID:         uuid.New().String(),
		RoomID:     request.RoomID,
		BusinessID: request.BusinessID,
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		Reason:     request.Reason,
		Notes:      request.Notes,
		CreatedAt:  time.Now().UTC(),
	}

	// inclusive block window queried as half-open [start, end+1d)
	queryRange := DateRange{Start: request.StartDate, End: request.EndDate.AddDate(0, 0, 1)}

	err := s.repo.InTransaction(ctx, func(tx TxAvailabilityRepo) error {
		result, err := s.checkRoom(ctx, tx, request.RoomID, queryRange)
		if err != nil {
			return err
		}
		switch result.Status {
		case ConflictBooking:
			return fmt.Errorf("%w: booking %s", ErrBookingConflict, *result.BookingID)
		case ConflictBlocked:
			return fmt.Errorf("%w: blocked range %s", ErrBlockedConflict, *result.BlockedRangeID)
		}

		if err := tx.CreateBlockedDate(ctx, blocked); err != nil {
			return fmt.Errorf("create blocked date: %w", err)
		}
		return nil
	})
	if err != nil {
		return BlockedDateRange{}, err
	}
	return blocked, nil
}

// BulkBlockDates blocks the same window on many rooms, best effort: each
// room is attempted independently and conflicts are collected instead of
// aborting the batch.
func (s *AvailabilityService) BulkBlockDates(ctx context.Context, businessID uuid.UUID, roomIDs []string, startDate, endDate time.Time, reason BlockReason, notes *string) (BulkBlockResult, error) {
	result := BulkBlockResult{Total: len(roomIDs)}

	for _, roomID := range roomIDs {
		_, err := s.CreateBlockedDate(ctx, NewBlockedDate{
			RoomID:     roomID,
			BusinessID: businessID,
			StartDate:  startDate,
			EndDate:    endDate,
			Reason:     reason,
			Notes:      notes,
		})
		if err == nil {
			result.Success++
			continue
		}

		result.Failed++
		result.Errors = append(result.Errors, BlockError{
			RoomID: roomID,
			Status: conflictStatusOf(err),
			Reason: err.Error(),
		})
	}

	return result, nil
}

func conflictStatusOf(err error) ConflictStatus {
	switch {
	case errors.Is(err, ErrBookingConflict):
		return ConflictBooking
	case errors.Is(err, ErrBlockedConflict):
		return ConflictBlocked
	default:
		return ConflictNone
	}
}

func (s *AvailabilityService) RemoveBlockedDate(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteBlockedDate(ctx, id)
	if err != nil {
		return fmt.Errorf("delete blocked date: %w", err)
	}
	if !deleted {
		return ErrBlockedDateNotFound
	}
	return nil
}

func (s *AvailabilityService) ListBlockedDates(ctx context.Context, roomID string) ([]BlockedDateRange, error) {
	blocked, err := s.repo.ListBlockedDates(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("list blocked dates: %w", err)
	}
	return blocked, nil
}
