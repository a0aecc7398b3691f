//go:build unit

package events_test

import (
	"testing"
	"time"

	"autocare-api/internal/events"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusEvent(appointmentID uuid.UUID, old, new string) events.Event {
	return events.Event{
		Name: events.AppointmentStatusChanged,
		Payload: events.StatusChangedPayload{
			AppointmentID: appointmentID,
			OldStatus:     old,
			NewStatus:     new,
		},
		OccurredAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Topics:     []events.Topic{events.TopicAppointment(appointmentID)},
	}
}

func drain(sub *events.Subscription) []events.Event {
	var out []events.Event
	for {
		select {
		case ev, ok := <-sub.C():
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestPublishOrderPerTopic(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()

	apptID := uuid.New()
	sub := bus.Subscribe(events.TopicAppointment(apptID))
	defer bus.Unsubscribe(sub)

	published := []events.Event{
		statusEvent(apptID, "pending", "confirmed"),
		statusEvent(apptID, "confirmed", "in_progress"),
		statusEvent(apptID, "in_progress", "waiting_parts"),
	}
	for _, ev := range published {
		bus.Publish(ev)
	}

	got := drain(sub)
	if diff := cmp.Diff(published, got); diff != "" {
		t.Errorf("event order mismatch (-want +got):\n%s", diff)
	}
}

func TestTopicFiltering(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()

	mine := uuid.New()
	other := uuid.New()

	sub := bus.Subscribe(events.TopicAppointment(mine))
	defer bus.Unsubscribe(sub)

	bus.Publish(statusEvent(other, "pending", "confirmed"))
	bus.Publish(statusEvent(mine, "pending", "confirmed"))

	got := drain(sub)
	require.Len(t, got, 1)
	payload := got[0].Payload.(events.StatusChangedPayload)
	assert.Equal(t, mine, payload.AppointmentID)
}

func TestOverlappingTopicsDeliverOnce(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()

	apptID := uuid.New()
	empID := uuid.New()

	sub := bus.Subscribe(events.TopicAppointment(apptID), events.TopicEmployee(empID))
	defer bus.Unsubscribe(sub)

	bus.Publish(events.Event{
		Name:    events.WorkTimerStarted,
		Payload: events.TimerStartedPayload{EmployeeID: empID, AppointmentID: apptID},
		Topics: []events.Topic{
			events.TopicAppointment(apptID),
			events.TopicEmployee(empID),
		},
	})

	assert.Len(t, drain(sub), 1)
}

func TestSubscribeAllSeesEverything(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()

	sub := bus.SubscribeAll()
	defer bus.Unsubscribe(sub)

	bus.Publish(statusEvent(uuid.New(), "pending", "confirmed"))
	bus.Publish(statusEvent(uuid.New(), "pending", "cancelled"))

	assert.Len(t, drain(sub), 2)
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := events.NewBus(1)
	defer bus.Close()

	apptID := uuid.New()
	sub := bus.Subscribe(events.TopicAppointment(apptID))
	defer bus.Unsubscribe(sub)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			bus.Publish(statusEvent(apptID, "pending", "confirmed"))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber buffer")
	}

	// Buffer holds one; the rest were dropped.
	assert.Len(t, drain(sub), 1)
}

func TestCloseClosesSubscriptions(t *testing.T) {
	bus := events.NewBus(16)

	topicSub := bus.Subscribe(events.TopicAdmins)
	allSub := bus.SubscribeAll()

	bus.Close()

	_, ok := <-topicSub.C()
	assert.False(t, ok)
	_, ok = <-allSub.C()
	assert.False(t, ok)

	// Publishing after close is a no-op, not a panic.
	bus.Publish(statusEvent(uuid.New(), "pending", "confirmed"))
}

func TestUnsubscribeTwiceIsSafe(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()

	sub := bus.Subscribe(events.TopicAdmins)
	bus.Unsubscribe(sub)
	bus.Unsubscribe(sub)

	_, ok := <-sub.C()
	assert.False(t, ok)

	// Unsubscribing after close is equally a no-op.
	late := bus.SubscribeAll()
	bus.Unsubscribe(late)
	bus.Unsubscribe(late)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := events.NewBus(16)
	defer bus.Close()

	apptID := uuid.New()
	sub := bus.Subscribe(events.TopicAppointment(apptID))
	bus.Unsubscribe(sub)

	bus.Publish(statusEvent(apptID, "pending", "confirmed"))

	_, ok := <-sub.C()
	assert.False(t, ok)
}
