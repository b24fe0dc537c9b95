package booking

import (
	"context"
	"time"

	"github.com/talentbook/talentbook-backend/internal/talent"
)

// Action is a talent's (or admin's) decision on a pending booking.
type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

type RequestInput struct {
	UserID    string
	TalentID  string
	StartTime time.Time
	EndTime   time.Time
}

// TalentDirectory is the slice of the talent service the booking service
// needs: existence checks on the talent being booked.
type TalentDirectory interface {
	GetByID(ctx context.Context, id string) (*talent.Talent, error)
}

type Service interface {
	// Request creates a booking in pending state after validating the
	// interval and checking the talent's calendar for conflicts.
	Request(ctx context.Context, in RequestInput) (*Booking, error)

	// Reschedule moves a pending booking to a new interval, re-running the
	// same temporal validations and conflict check as Request.
	Reschedule(ctx context.Context, id string, start, end time.Time) (*Booking, error)

	// Respond accepts or rejects a pending booking. A conflicting or expired
	// accept still transitions the booking (to rejected or cancelled) before
	// the error is returned.
	Respond(ctx context.Context, id string, action Action) (*Booking, error)

	// Cancel sets the booking to cancelled unconditionally.
	Cancel(ctx context.Context, id string) (*Booking, error)

	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByTalent(ctx context.Context, talentID string) ([]*Booking, error)
}

type service struct {
	repo    Repository
	talents TalentDirectory
}

func NewService(repo Repository, talents TalentDirectory) Service {
	return &service{
		repo:    repo,
		talents: talents,
	}
}

// validateInterval enforces the temporal invariants shared by Request and
// Reschedule: ordering, not in the past, duration within [30m, 24h].
func validateInterval(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidInterval
	}
	if start.Before(time.Now().UTC()) {
		return ErrPastBooking
	}

	duration := end.Sub(start)
	if duration < MinDuration {
		return ErrTooShort
	}
	if duration > MaxDuration {
		return ErrTooLong
	}
	return nil
}

func (s *service) Request(ctx context.Context, in RequestInput) (*Booking, error) {
	if err := validateInterval(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	if _, err := s.talents.GetByID(ctx, in.TalentID); err != nil {
		return nil, ErrTalentNotFound
	}

	b := &Booking{
		UserID:    in.UserID,
		TalentID:  in.TalentID,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Status:    StatusPending,
	}

	err := s.repo.WithTalentLock(ctx, in.TalentID, func(r Repository) error {
		conflict, err := r.HasOverlap(ctx, in.TalentID, in.StartTime, in.EndTime, RequestBlocking(), "")
		if err != nil {
			return err
		}
		if conflict {
			return ErrSlotConflict
		}
		return r.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	// Reload to pick up the joined talent display fields.
	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) Reschedule(ctx context.Context, id string, start, end time.Time) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusPending {
		return nil, ErrInvalidState
	}

	if err := validateInterval(start, end); err != nil {
		return nil, err
	}

	err = s.repo.WithTalentLock(ctx, b.TalentID, func(r Repository) error {
		conflict, err := r.HasOverlap(ctx, b.TalentID, start, end, RequestBlocking(), b.ID)
		if err != nil {
			return err
		}
		if conflict {
			return ErrSlotConflict
		}

		b.StartTime = start
		b.EndTime = end
		return r.Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) Respond(ctx context.Context, id string, action Action) (*Booking, error) {
	if action != ActionAccept && action != ActionReject {
		return nil, ErrInvalidAction
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Compensating transitions (auto-cancel, auto-reject) must commit, so
	// domain failures are carried out of the locked transaction separately
	// instead of aborting it.
	var domainErr error

	err = s.repo.WithTalentLock(ctx, b.TalentID, func(r Repository) error {
		cur, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		// Re-checked under the lock: a concurrent respond may have won.
		if cur.Status != StatusPending {
			domainErr = ErrInvalidState
			return nil
		}

		if action == ActionReject {
			cur.Status = StatusRejected
			return r.Update(ctx, cur)
		}

		if time.Now().UTC().After(cur.StartTime) {
			// The slot has already started; accepting makes no sense.
			cur.Status = StatusCancelled
			if err := r.Update(ctx, cur); err != nil {
				return err
			}
			domainErr = ErrExpiredBooking
			return nil
		}

		conflict, err := r.HasOverlap(ctx, cur.TalentID, cur.StartTime, cur.EndTime, ConfirmBlocking(), cur.ID)
		if err != nil {
			return err
		}
		if conflict {
			// Another booking won the race for this slot.
			cur.Status = StatusRejected
			if err := r.Update(ctx, cur); err != nil {
				return err
			}
			domainErr = ErrSlotConflict
			return nil
		}

		cur.Status = StatusConfirmed
		return r.Update(ctx, cur)
	})
	if err != nil {
		return nil, err
	}
	if domainErr != nil {
		return nil, domainErr
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) Cancel(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Status = StatusCancelled
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByTalent(ctx context.Context, talentID string) ([]*Booking, error) {
	return s.repo.ListByTalent(ctx, talentID)
}
