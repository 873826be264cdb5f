package ecs

import (
	"testing"

	"github.com/phanxgames/glide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []glide.Event
	EngineEventType.Subscribe(world, func(w donburi.World, e glide.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(glide.Event{
		Type:      glide.EventTriggerEnter,
		TriggerID: "hero",
		Direction: glide.DirectionForward,
		Progress:  0.25,
	})
	sink.EmitEvent(glide.Event{Type: glide.EventLockChanged, Locked: true})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	EngineEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != glide.EventTriggerEnter || e0.TriggerID != "hero" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Direction != glide.DirectionForward || e0.Progress != 0.25 {
		t.Errorf("event 0 direction/progress: %v, %v", e0.Direction, e0.Progress)
	}
	if e1 := received[1]; e1.Type != glide.EventLockChanged || !e1.Locked {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	EngineEventType.Subscribe(world, func(w donburi.World, e glide.Event) {
		count1++
	})
	EngineEventType.Subscribe(world, func(w donburi.World, e glide.Event) {
		count2++
	})

	sink.EmitEvent(glide.Event{Type: glide.EventPinStart})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_FromEngine(t *testing.T) {
	world := donburi.NewWorld()
	var got []glide.EventType
	EngineEventType.Subscribe(world, func(w donburi.World, e glide.Event) {
		got = append(got, e.Type)
	})

	cfg := glide.DefaultConfig()
	cfg.Intro.Enabled = false
	cfg.Render.Enabled = false
	e := glide.NewEngine(cfg, glide.StaticEnvironment{ReducedMotion: true, Width: 1280},
		glide.WithInput(glide.NewInjectedInput(nil)),
		glide.WithEventSink(NewDonburiSink(world)))
	if err := e.Mount(); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer e.Unmount()

	e.LockScroll()
	e.UnlockScroll()
	events.ProcessAllEvents(world)

	if len(got) != 2 || got[0] != glide.EventLockChanged || got[1] != glide.EventLockChanged {
		t.Errorf("events = %v, want two lock changes", got)
	}
}
