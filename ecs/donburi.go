package ecs

import (
	"github.com/phanxgames/gizmo"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ManipulatorEventType is the Donburi event type for manipulator context
// events. Subscribe to it in ECS systems to react to tool switches and
// activation changes.
var ManipulatorEventType = events.NewEventType[gizmo.ManipulatorEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to ManipulatorEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) gizmo.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event gizmo.ManipulatorEvent) {
	ManipulatorEventType.Publish(s.world, event)
}
