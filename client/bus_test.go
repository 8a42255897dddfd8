package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spotshot-api/client"
)

// TestBus_DeliversInRegistrationOrder проверяет порядок доставки
func TestBus_DeliversInRegistrationOrder(t *testing.T) {
	bus := client.NewBus(nil)

	var order []string
	bus.Subscribe(func(e client.Event) { order = append(order, "first") })
	bus.Subscribe(func(e client.Event) { order = append(order, "second") })
	bus.Subscribe(func(e client.Event) { order = append(order, "third") })

	bus.Publish(client.Event{Kind: client.EventAdded, SpotID: "spot-1"})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

// TestBus_Unsubscribe проверяет отписку
func TestBus_Unsubscribe(t *testing.T) {
	bus := client.NewBus(nil)

	calls := 0
	unsubscribe := bus.Subscribe(func(e client.Event) { calls++ })

	bus.Publish(client.Event{Kind: client.EventAdded})
	unsubscribe()
	bus.Publish(client.Event{Kind: client.EventAdded})

	assert.Equal(t, 1, calls)

	// повторная отписка безопасна
	unsubscribe()
}

// TestBus_NoReplayForLateSubscribers проверяет отсутствие реплея
func TestBus_NoReplayForLateSubscribers(t *testing.T) {
	bus := client.NewBus(nil)

	bus.Publish(client.Event{Kind: client.EventAdded, SpotID: "spot-1"})

	called := false
	bus.Subscribe(func(e client.Event) { called = true })

	assert.False(t, called)
}

// TestBus_PanickingListenerDoesNotBreakOthers проверяет изоляцию паники
func TestBus_PanickingListenerDoesNotBreakOthers(t *testing.T) {
	bus := client.NewBus(nil)

	var received []string
	bus.Subscribe(func(e client.Event) { received = append(received, "a") })
	bus.Subscribe(func(e client.Event) { panic("boom") })
	bus.Subscribe(func(e client.Event) { received = append(received, "c") })

	assert.NotPanics(t, func() {
		bus.Publish(client.Event{Kind: client.EventAdded})
	})

	assert.Equal(t, []string{"a", "c"}, received)
}

// TestBus_EventCarriesSpotID проверяет передачу значения события
func TestBus_EventCarriesSpotID(t *testing.T) {
	bus := client.NewBus(nil)

	var got client.Event
	bus.Subscribe(func(e client.Event) { got = e })

	bus.Publish(client.Event{Kind: client.EventRemoved, SpotID: "spot-7"})

	assert.Equal(t, client.EventRemoved, got.Kind)
	assert.Equal(t, "spot-7", got.SpotID)
}
