package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbook/talentbook-backend/internal/talent"
)

// memoryRepository is an in-memory Repository. WithTalentLock serializes on a
// per-talent mutex, mirroring the advisory lock the pgx repository takes.
type memoryRepository struct {
	mu       sync.Mutex
	bookings map[string]*Booking

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		bookings: make(map[string]*Booking),
		locks:    make(map[string]*sync.Mutex),
	}
}

func (r *memoryRepository) talentLock(talentID string) *sync.Mutex {
	r.lockMu.Lock()
	defer r.lockMu.Unlock()
	if _, ok := r.locks[talentID]; !ok {
		r.locks[talentID] = &sync.Mutex{}
	}
	return r.locks[talentID]
}

func (r *memoryRepository) Create(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	b.ID = uuid.New().String()
	b.CreatedAt = now
	b.UpdatedAt = now

	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *memoryRepository) ListByTalent(ctx context.Context, talentID string) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Booking
	for _, b := range r.bookings {
		if b.TalentID == talentID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookings[b.ID]
	if !ok {
		return ErrNotFound
	}
	stored.StartTime = b.StartTime
	stored.EndTime = b.EndTime
	stored.Status = b.Status
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryRepository) HasOverlap(ctx context.Context, talentID string, start, end time.Time, blocking []Status, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.TalentID != talentID || b.ID == excludeID {
			continue
		}
		blocked := false
		for _, s := range blocking {
			if b.Status == s {
				blocked = true
				break
			}
		}
		if blocked && Overlaps(b.StartTime, b.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) WithTalentLock(ctx context.Context, talentID string, fn func(Repository) error) error {
	lock := r.talentLock(talentID)
	lock.Lock()
	defer lock.Unlock()

	return fn(&lockedView{parent: r})
}

// lockedView reuses the parent's storage for calls made under the lock.
type lockedView struct {
	parent *memoryRepository
}

func (v *lockedView) Create(ctx context.Context, b *Booking) error {
	return v.parent.Create(ctx, b)
}

func (v *lockedView) GetByID(ctx context.Context, id string) (*Booking, error) {
	return v.parent.GetByID(ctx, id)
}

func (v *lockedView) ListByTalent(ctx context.Context, talentID string) ([]*Booking, error) {
	return v.parent.ListByTalent(ctx, talentID)
}

func (v *lockedView) Update(ctx context.Context, b *Booking) error {
	return v.parent.Update(ctx, b)
}

func (v *lockedView) HasOverlap(ctx context.Context, talentID string, start, end time.Time, blocking []Status, excludeID string) (bool, error) {
	return v.parent.HasOverlap(ctx, talentID, start, end, blocking, excludeID)
}

func (v *lockedView) WithTalentLock(ctx context.Context, talentID string, fn func(Repository) error) error {
	// Already locked; run directly.
	return fn(v)
}

// seed inserts a booking directly, bypassing service validation. Used to
// create fixtures the service would refuse (e.g. pending bookings that have
// already started).
func (r *memoryRepository) seed(b *Booking) *Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	clone := *b
	r.bookings[b.ID] = &clone
	return b
}

// staticTalents resolves every listed id and fails the rest.
type staticTalents struct {
	ids map[string]bool
}

func (d *staticTalents) GetByID(ctx context.Context, id string) (*talent.Talent, error) {
	if d.ids[id] {
		return &talent.Talent{ID: id, Skill: "guitar"}, nil
	}
	return nil, talent.ErrNotFound
}

func newTestService(talentIDs ...string) (Service, *memoryRepository) {
	repo := newMemoryRepository()
	ids := make(map[string]bool, len(talentIDs))
	for _, id := range talentIDs {
		ids[id] = true
	}
	return NewService(repo, &staticTalents{ids: ids}), repo
}

func futureSlot(d time.Duration) (time.Time, time.Time) {
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Minute)
	return start, start.Add(d)
}

func TestRequestValidation(t *testing.T) {
	ctx := context.Background()
	talentID := uuid.New().String()
	svc, _ := newTestService(talentID)

	now := time.Now().UTC()

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"end before start", now.Add(2 * time.Hour), now.Add(1 * time.Hour), ErrInvalidInterval},
		{"zero-length interval", now.Add(1 * time.Hour), now.Add(1 * time.Hour), ErrInvalidInterval},
		{"start in the past", now.Add(-1 * time.Hour), now.Add(1 * time.Hour), ErrPastBooking},
		{"below minimum duration", now.Add(1 * time.Hour), now.Add(1*time.Hour + 29*time.Minute), ErrTooShort},
		{"above maximum duration", now.Add(1 * time.Hour), now.Add(25*time.Hour + 1*time.Minute), ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Request(ctx, RequestInput{
				UserID:    uuid.New().String(),
				TalentID:  talentID,
				StartTime: tt.start,
				EndTime:   tt.end,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("exactly minimum duration is accepted", func(t *testing.T) {
		start, end := futureSlot(MinDuration)
		b, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID, StartTime: start, EndTime: end,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusPending, b.Status)
	})

	t.Run("unknown talent", func(t *testing.T) {
		start, end := futureSlot(time.Hour)
		_, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: uuid.New().String(), StartTime: start.Add(6 * time.Hour), EndTime: end.Add(6 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrTalentNotFound)
	})
}

func TestRequestConflicts(t *testing.T) {
	ctx := context.Background()
	talentID := uuid.New().String()
	svc, _ := newTestService(talentID)

	start, end := futureSlot(time.Hour)

	first, err := svc.Request(ctx, RequestInput{
		UserID: uuid.New().String(), TalentID: talentID, StartTime: start, EndTime: end,
	})
	require.NoError(t, err)
	require.Equal(t, StatusPending, first.Status)

	t.Run("pending booking blocks an overlapping request", func(t *testing.T) {
		_, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID,
			StartTime: start.Add(30 * time.Minute), EndTime: end.Add(30 * time.Minute),
		})
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("back-to-back slots do not conflict", func(t *testing.T) {
		b, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID,
			StartTime: end, EndTime: end.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, StatusPending, b.Status)
	})

	t.Run("cancelled booking frees the slot", func(t *testing.T) {
		_, err := svc.Cancel(ctx, first.ID)
		require.NoError(t, err)

		b, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID,
			StartTime: start, EndTime: end,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusPending, b.Status)
	})

	t.Run("same slot on another talent does not conflict", func(t *testing.T) {
		otherTalent := uuid.New().String()
		svc2, _ := newTestService(otherTalent)

		b, err := svc2.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: otherTalent,
			StartTime: start, EndTime: end,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusPending, b.Status)
	})
}

func TestRespond(t *testing.T) {
	ctx := context.Background()
	talentID := uuid.New().String()

	request := func(t *testing.T, svc Service, start, end time.Time) *Booking {
		t.Helper()
		b, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID, StartTime: start, EndTime: end,
		})
		require.NoError(t, err)
		return b
	}

	t.Run("accept confirms a pending booking", func(t *testing.T) {
		svc, _ := newTestService(talentID)
		start, end := futureSlot(time.Hour)
		b := request(t, svc, start, end)

		got, err := svc.Respond(ctx, b.ID, ActionAccept)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, got.Status)
	})

	t.Run("reject resolves a pending booking", func(t *testing.T) {
		svc, _ := newTestService(talentID)
		start, end := futureSlot(time.Hour)
		b := request(t, svc, start, end)

		got, err := svc.Respond(ctx, b.ID, ActionReject)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, got.Status)
	})

	t.Run("responding twice fails", func(t *testing.T) {
		svc, _ := newTestService(talentID)
		start, end := futureSlot(time.Hour)
		b := request(t, svc, start, end)

		_, err := svc.Respond(ctx, b.ID, ActionAccept)
		require.NoError(t, err)

		_, err = svc.Respond(ctx, b.ID, ActionReject)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("unknown action", func(t *testing.T) {
		svc, _ := newTestService(talentID)
		start, end := futureSlot(time.Hour)
		b := request(t, svc, start, end)

		_, err := svc.Respond(ctx, b.ID, Action("approve"))
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _ := newTestService(talentID)
		_, err := svc.Respond(ctx, uuid.New().String(), ActionAccept)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("accepting an already-started booking cancels it", func(t *testing.T) {
		svc, repo := newTestService(talentID)

		stale := repo.seed(&Booking{
			UserID:    uuid.New().String(),
			TalentID:  talentID,
			StartTime: time.Now().UTC().Add(-2 * time.Hour),
			EndTime:   time.Now().UTC().Add(-1 * time.Hour),
			Status:    StatusPending,
		})

		_, err := svc.Respond(ctx, stale.ID, ActionAccept)
		assert.ErrorIs(t, err, ErrExpiredBooking)

		got, err := svc.GetByID(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got.Status)
	})

	t.Run("rejecting an already-started booking still works", func(t *testing.T) {
		svc, repo := newTestService(talentID)

		stale := repo.seed(&Booking{
			UserID:    uuid.New().String(),
			TalentID:  talentID,
			StartTime: time.Now().UTC().Add(-2 * time.Hour),
			EndTime:   time.Now().UTC().Add(-1 * time.Hour),
			Status:    StatusPending,
		})

		got, err := svc.Respond(ctx, stale.ID, ActionReject)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, got.Status)
	})

	t.Run("accepting against a confirmed overlap rejects the loser", func(t *testing.T) {
		svc, repo := newTestService(talentID)
		start, end := futureSlot(time.Hour)

		winner := request(t, svc, start, end)

		// Seeded directly: the service itself would refuse the overlapping
		// pending pair at request time.
		loser := repo.seed(&Booking{
			UserID:    uuid.New().String(),
			TalentID:  talentID,
			StartTime: start.Add(30 * time.Minute),
			EndTime:   end.Add(30 * time.Minute),
			Status:    StatusPending,
		})

		_, err := svc.Respond(ctx, winner.ID, ActionAccept)
		require.NoError(t, err)

		_, err = svc.Respond(ctx, loser.ID, ActionAccept)
		assert.ErrorIs(t, err, ErrSlotConflict)

		got, err := svc.GetByID(ctx, loser.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, got.Status)

		kept, err := svc.GetByID(ctx, winner.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, kept.Status)
	})
}

// TestConcurrentAccepts drives overlapping pending bookings through Respond
// from many goroutines and verifies at most one ends up confirmed.
func TestConcurrentAccepts(t *testing.T) {
	ctx := context.Background()
	talentID := uuid.New().String()
	svc, repo := newTestService(talentID)

	start, end := futureSlot(time.Hour)

	const contenders = 8
	ids := make([]string, contenders)
	for i := range ids {
		b := repo.seed(&Booking{
			UserID:    uuid.New().String(),
			TalentID:  talentID,
			StartTime: start,
			EndTime:   end,
			Status:    StatusPending,
		})
		ids[i] = b.ID
	}

	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = svc.Respond(ctx, id, ActionAccept)
		}(i, id)
	}
	wg.Wait()

	confirmed, rejected := 0, 0
	for i, id := range ids {
		b, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		switch b.Status {
		case StatusConfirmed:
			confirmed++
			assert.NoError(t, errs[i])
		case StatusRejected:
			rejected++
			assert.ErrorIs(t, errs[i], ErrSlotConflict)
		default:
			t.Fatalf("booking %s left in unexpected status %s", id, b.Status)
		}
	}

	assert.Equal(t, 1, confirmed, "exactly one overlapping accept may win")
	assert.Equal(t, contenders-1, rejected)
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()
	talentID := uuid.New().String()

	t.Run("moves a pending booking and frees the old slot", func(t *testing.T) {
		svc, _ := newTestService(talentID)
		start, end := futureSlot(time.Hour)

		b, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID, StartTime: start, EndTime: end,
		})
		require.NoError(t, err)

		newStart := start.Add(3 * time.Hour)
		newEnd := end.Add(3 * time.Hour)
		moved, err := svc.Reschedule(ctx, b.ID, newStart, newEnd)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, moved.Status)
		assert.True(t, moved.StartTime.Equal(newStart))
		assert.True(t, moved.EndTime.Equal(newEnd))

		// Old slot is bookable again.
		_, err = svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID, StartTime: start, EndTime: end,
		})
		require.NoError(t, err)
	})

	t.Run("re-validates the new interval", func(t *testing.T) {
		svc, _ := newTestService(talentID)
		start, end := futureSlot(time.Hour)

		b, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID, StartTime: start, EndTime: end,
		})
		require.NoError(t, err)

		_, err = svc.Reschedule(ctx, b.ID, start, start.Add(10*time.Minute))
		assert.ErrorIs(t, err, ErrTooShort)
	})

	t.Run("rescheduling onto itself does not self-conflict", func(t *testing.T) {
		svc, _ := newTestService(talentID)
		start, end := futureSlot(time.Hour)

		b, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID, StartTime: start, EndTime: end,
		})
		require.NoError(t, err)

		// Shift by 15 minutes: overlaps the booking's own current slot.
		moved, err := svc.Reschedule(ctx, b.ID, start.Add(15*time.Minute), end.Add(15*time.Minute))
		require.NoError(t, err)
		assert.True(t, moved.StartTime.Equal(start.Add(15*time.Minute)))
	})

	t.Run("conflicting target slot", func(t *testing.T) {
		svc, _ := newTestService(talentID)
		start, end := futureSlot(time.Hour)

		b, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID, StartTime: start, EndTime: end,
		})
		require.NoError(t, err)

		other, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID,
			StartTime: end, EndTime: end.Add(time.Hour),
		})
		require.NoError(t, err)
		_ = other

		_, err = svc.Reschedule(ctx, b.ID, end.Add(30*time.Minute), end.Add(90*time.Minute))
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("only pending bookings can be rescheduled", func(t *testing.T) {
		svc, _ := newTestService(talentID)
		start, end := futureSlot(time.Hour)

		b, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID, StartTime: start, EndTime: end,
		})
		require.NoError(t, err)

		_, err = svc.Respond(ctx, b.ID, ActionAccept)
		require.NoError(t, err)

		_, err = svc.Reschedule(ctx, b.ID, start.Add(5*time.Hour), end.Add(5*time.Hour))
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestCancelAndLifecycle(t *testing.T) {
	ctx := context.Background()
	talentID := uuid.New().String()
	svc, _ := newTestService(talentID)

	start, end := futureSlot(time.Hour)

	b, err := svc.Request(ctx, RequestInput{
		UserID: uuid.New().String(), TalentID: talentID, StartTime: start, EndTime: end,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, b.Status)

	moved, err := svc.Reschedule(ctx, b.ID, start.Add(time.Hour), end.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, StatusPending, moved.Status)

	cancelled, err := svc.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)

	t.Run("confirmed bookings can also be cancelled", func(t *testing.T) {
		b2, err := svc.Request(ctx, RequestInput{
			UserID: uuid.New().String(), TalentID: talentID, StartTime: start, EndTime: end,
		})
		require.NoError(t, err)

		_, err = svc.Respond(ctx, b2.ID, ActionAccept)
		require.NoError(t, err)

		got, err := svc.Cancel(ctx, b2.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got.Status)
	})

	t.Run("cancel unknown booking", func(t *testing.T) {
		_, err := svc.Cancel(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListByTalent(t *testing.T) {
	ctx := context.Background()
	talentID := uuid.New().String()
	svc, _ := newTestService(talentID)

	start, _ := futureSlot(time.Hour)
	for i := 0; i < 3; i++ {
		s := start.Add(time.Duration(i*2) * time.Hour)
		_, err := svc.Request(ctx, RequestInput{
			UserID:    uuid.New().String(),
			TalentID:  talentID,
			StartTime: s,
			EndTime:   s.Add(time.Hour),
		})
		require.NoError(t, err)
	}

	bookings, err := svc.ListByTalent(ctx, talentID)
	require.NoError(t, err)
	assert.Len(t, bookings, 3)

	for i, b := range bookings {
		assert.Equal(t, StatusPending, b.Status, fmt.Sprintf("booking %d", i))
	}
}
