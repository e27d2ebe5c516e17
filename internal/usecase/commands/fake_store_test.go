//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"numberpool/internal/domain/slot"
	"numberpool/internal/usecase/commands"

	"github.com/google/uuid"
)

var errFakeSlotMissing = errors.New("fake store: slot row missing")

// fakeStore is an in-memory Store with the same contract as the Postgres
// implementation: Transact serializes writers and rolls state back when fn
// returns an error.
type fakeStore struct {
	mu          sync.Mutex
	slots       map[int]*slot.Slot
	submissions map[int]slot.Submission
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:       make(map[int]*slot.Slot),
		submissions: make(map[int]slot.Submission),
	}
}

func (f *fakeStore) Transact(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slotsBackup := make(map[int]*slot.Slot, len(f.slots))
	for n, s := range f.slots {
		slotsBackup[n] = copySlot(s)
	}
	subsBackup := make(map[int]slot.Submission, len(f.submissions))
	for n, sub := range f.submissions {
		subsBackup[n] = sub
	}

	if err := fn(ctx, &fakeTx{store: f}); err != nil {
		f.slots = slotsBackup
		f.submissions = subsBackup
		return err
	}
	return nil
}

func (f *fakeStore) EnsurePool(_ context.Context, size int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for n := 1; n <= size; n++ {
		if _, ok := f.slots[n]; !ok {
			f.slots[n] = slot.NewAvailableSlot(n)
		}
	}
	return nil
}

func (f *fakeStore) slotSnapshot(number int) *slot.Slot {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[number]
	if !ok {
		return nil
	}
	return copySlot(s)
}

func (f *fakeStore) submissionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submissions)
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) SlotForUpdate(_ context.Context, number int) (*slot.Slot, error) {
	s, ok := t.store.slots[number]
	if !ok {
		return nil, errFakeSlotMissing
	}
	return copySlot(s), nil
}

func (t *fakeTx) ReservedSlotByHolder(_ context.Context, holderID uuid.UUID) (*slot.Slot, error) {
	for _, s := range t.store.slots {
		if s.Status() == slot.StatusReserved && s.Holder().ID() == holderID {
			return copySlot(s), nil
		}
	}
	return nil, nil
}

func (t *fakeTx) ExpiredReservations(_ context.Context, cutoff time.Time) ([]*slot.Slot, error) {
	var result []*slot.Slot
	for _, s := range t.store.slots {
		at := s.ReservedAt()
		if s.Status() == slot.StatusReserved && at != nil && !at.After(cutoff) {
			result = append(result, copySlot(s))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number() < result[j].Number() })
	return result, nil
}

func (t *fakeTx) SaveSlot(_ context.Context, s *slot.Slot) error {
	if _, ok := t.store.slots[s.Number()]; !ok {
		return errFakeSlotMissing
	}
	t.store.slots[s.Number()] = copySlot(s)
	return nil
}

func (t *fakeTx) SubmissionBySlot(_ context.Context, number int) (*slot.Submission, error) {
	sub, ok := t.store.submissions[number]
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

func (t *fakeTx) UpsertSubmission(_ context.Context, sub slot.Submission) error {
	t.store.submissions[sub.SlotNumber()] = sub
	return nil
}

func (t *fakeTx) DeleteSubmission(_ context.Context, number int) error {
	delete(t.store.submissions, number)
	return nil
}

func copySlot(s *slot.Slot) *slot.Slot {
	cp, err := slot.ReconstructSlot(s.Number(), s.Status(), s.Holder(), s.ReservedAt())
	if err != nil {
		panic("fake store holds an invalid slot: " + err.Error())
	}
	return cp
}

// fakeNotifier records deliveries and can be told to fail.
type fakeNotifier struct {
	mu       sync.Mutex
	messages []sentMessage
	err      error
}

type sentMessage struct {
	Recipient uuid.UUID
	Message   string
}

func (n *fakeNotifier) Notify(_ context.Context, recipient uuid.UUID, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, sentMessage{Recipient: recipient, Message: message})
	return nil
}

func (n *fakeNotifier) sent() []sentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentMessage(nil), n.messages...)
}
