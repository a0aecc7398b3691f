//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"autocare-api/internal/events"
	"autocare-api/internal/pkg/clock"
	"autocare-api/internal/pkg/lock"
	"autocare-api/internal/usecase/shared"
	sharedmock "autocare-api/tests/mock/shared"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// fixture wires command implementations against gomock persistence, a real
// keyed mutex and a real event bus so tests observe actual publish behavior.
type fixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	appts    *sharedmock.MockAppointmentRepository
	timeLogs *sharedmock.MockTimeLogRepository
	modReqs  *sharedmock.MockModificationRequestRepository
	locks    *lock.KeyedMutex
	bus      *events.Bus
	events   *events.Subscription
	clock    *clock.MockClock
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()

	f := &fixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		appts:    sharedmock.NewMockAppointmentRepository(ctrl),
		timeLogs: sharedmock.NewMockTimeLogRepository(ctrl),
		modReqs:  sharedmock.NewMockModificationRequestRepository(ctrl),
		locks:    lock.NewKeyedMutex(time.Second),
		bus:      events.NewBus(64),
		clock:    clock.NewMockClock(testNow),
	}
	f.events = f.bus.SubscribeAll()
	t.Cleanup(f.bus.Close)

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Appointments().Return(f.appts).AnyTimes()
	f.tx.EXPECT().TimeLogs().Return(f.timeLogs).AnyTimes()
	f.tx.EXPECT().ModificationRequests().Return(f.modReqs).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()

	return f
}

func (f *fixture) lastEvent(t *testing.T) events.Event {
	t.Helper()
	select {
	case ev := <-f.events.C():
		return ev
	case <-time.After(time.Second):
		t.Fatal("expected an event, none published")
		return events.Event{}
	}
}

func (f *fixture) requireNoEvent(t *testing.T) {
	t.Helper()
	select {
	case ev := <-f.events.C():
		t.Fatalf("unexpected event published: %s", ev.Name)
	default:
	}
}

func requireEventCount(t *testing.T, sub *events.Subscription, want int) {
	t.Helper()
	count := 0
	for {
		select {
		case _, ok := <-sub.C():
			if !ok {
				require.Equal(t, want, count)
				return
			}
			count++
		default:
			require.Equal(t, want, count)
			return
		}
	}
}
