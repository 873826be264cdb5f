// Package glide is a scroll-synchronized animation engine for [Ebitengine].
//
// Glide turns wheel and touch input into an eased virtual scroll offset,
// maps that offset onto per-element progress through scroll triggers, and
// drives timelines, pinned sections and a shader-backed scene from it. All
// of it runs on one frame tick, so every stage sees the same scroll state.
//
// # Quick start
//
// The simplest way to get started is [Run], which mounts an [Engine],
// creates a window and runs the frame loop for you:
//
//	cfg, err := glide.LoadConfig("page.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	e := glide.NewEngine(cfg, nil)
//	if err := glide.Run(e, glide.RunConfig{Title: "Page"}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself and call
// [Engine.Update] and [Engine.Draw] directly after [Engine.Mount].
//
// # Frame order
//
// Each [Engine.Update] runs, in order: input polling, the scroller's
// glide ([Scroller.Advance]), the trigger pass ([TriggerRegistry.Reevaluate],
// a scroll subscriber), frame callbacks on the [Ticker] (wall-clock
// timelines, the [RenderLoop], the [Intro]), then due timers on the [Clock].
//
// # Capabilities
//
// [Detect] runs once per mount. When the user prefers reduced motion or the
// viewport is at or below the breakpoint, the engine uses a
// [NativeScroller] and skips the render loop entirely.
//
// # Triggers and timelines
//
// A trigger binds an [Element]'s scroll range, given by two [Position]
// values such as "top bottom" and "bottom top", to a progress in [0, 1]:
//
//	h, err := e.Registry().Register(glide.TriggerSpec{
//		ID:       "hero",
//		Element:  box,
//		OnUpdate: func(p float64) { fmt.Println(p) },
//	})
//
// A scrubbed [Timeline] is a pure function of that progress; a wall-clock
// timeline plays when a toggle trigger enters and reverses when it is left
// backward. Overlapping segments on one parameter never blend: the segment
// declared last wins.
//
// # Scroll lock
//
// [ScrollLock] blocks input, pauses the scroller and freezes every trigger.
// The [Intro] holds it until the scene signals [Ready] or its timeout
// elapses, and [Engine.Unmount] always releases it.
//
// # Configuration
//
// [Config] is loaded from YAML. Sections listed there are mounted with
// [Engine.MountSection]; the same can be done from code with a
// [SectionSpec].
//
// [Ebitengine]: https://ebitengine.org
package glide
