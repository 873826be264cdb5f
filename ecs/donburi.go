package ecs

import (
	"github.com/phanxgames/glide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EngineEventType is the Donburi event type for glide engine events.
var EngineEventType = events.NewEventType[glide.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on EngineEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) glide.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event glide.Event) {
	EngineEventType.Publish(s.world, event)
}
