package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSubscriber struct {
	id       string
	types    map[string]bool
	received []Event
}

func (s *recordingSubscriber) ID() string { return s.id }

func (s *recordingSubscriber) HandleEvent(e Event) { s.received = append(s.received, e) }

func (s *recordingSubscriber) InterestedIn(eventType string) bool { return s.types[eventType] }

func TestEventBus_SubscribeAndPublish(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{
		id:    "recorder",
		types: map[string]bool{TypeCellCollapsed: true},
	}
	bus.Subscribe(sub)

	bus.Publish(NewCellCollapsedEvent("g1", 2, 3, "blue", false))
	bus.Publish(NewMoveAppliedEvent("g1", "blue", 2, 3)) // filtered out

	assert.Len(t, sub.received, 1)
	assert.Equal(t, TypeCellCollapsed, sub.received[0].Type())
	assert.Equal(t, "g1", sub.received[0].GameID())
}

func TestEventBus_SubscribeFunc(t *testing.T) {
	bus := NewEventBus()
	var got []Event
	bus.SubscribeFunc(TypePhaseChanged, func(e Event) { got = append(got, e) })

	bus.Publish(NewPhaseChangedEvent("g1", "Placement", "Observation", "turn budget exhausted"))

	assert.Len(t, got, 1)
	pc := got[0].(*PhaseChangedEvent)
	assert.Equal(t, "Placement", pc.From)
	assert.Equal(t, "Observation", pc.To)
}

func TestEventBus_PanicIsolation(t *testing.T) {
	bus := NewEventBus()
	bus.SubscribeFunc(TypeGameEnded, func(Event) { panic("boom") })

	var delivered bool
	bus.SubscribeFunc(TypeGameEnded, func(Event) { delivered = true })

	assert.NotPanics(t, func() {
		bus.Publish(NewGameEndedEvent("g1", 20, 16, "blue", false))
	})
	assert.True(t, delivered)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "recorder", types: map[string]bool{TypeGameReset: true}}
	bus.Subscribe(sub)
	assert.Equal(t, 1, bus.SubscriberCount())

	bus.Unsubscribe("recorder")
	bus.Publish(NewGameResetEvent("g1"))

	assert.Equal(t, 0, bus.SubscriberCount())
	assert.Empty(t, sub.received)
}
