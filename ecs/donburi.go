package ecs

import (
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for easel input events.
// Subscribe to this in your ECS systems to receive keyboard, mouse, wheel,
// and window events.
var InputEventType = events.NewEventType[easel.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Input
// events are published to InputEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) easel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event easel.Event) {
	InputEventType.Publish(s.world, event)
}
