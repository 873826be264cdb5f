package glide

import (
	"fmt"
	"log/slog"
	"os"
)

// Engine is the page root. It owns the process-wide scroller, trigger
// registry, scroll lock, frame ticker and timer clock, and is the only
// thing that creates or destroys them.
type Engine struct {
	cfg  Config
	env  Environment
	caps CapabilityFlags
	log  *slog.Logger
	sink multiSink

	input    InputSource
	inputBuf []InputEvent

	scroller Scroller
	registry *TriggerRegistry
	lock     *ScrollLock
	intro    *Intro
	ticker   Ticker
	clock    Clock

	// scene belongs to the current mount. sceneOpt and newScene are the
	// WithScene and WithSceneFactory sources it is built from.
	scene      Scene
	sceneOpt   Scene
	sceneSpent bool
	newScene   func() (Scene, error)
	renderLoop *RenderLoop

	layout   []*Box
	sections arena[*Section]
	viewport Vec2
	docH     float64

	mounted bool
	debug   bool
	stats   frameStats
	shots   []string
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger sets the engine's logger. The default discards everything
// unless debug mode is on, in which case it writes text to stderr.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithInput replaces the default EbitenInput.
func WithInput(src InputSource) Option {
	return func(e *Engine) { e.input = src }
}

// WithEventSink forwards trigger, pin, lock and intro events to sink.
func WithEventSink(sink EventSink) Option {
	return func(e *Engine) { e.sink = append(e.sink, sink) }
}

// WithScene sets the 3D scene the render loop writes into. Without it the
// engine builds a ShaderScene from the config when rendering is enabled.
// The scene is released on Unmount, so it serves a single mount; a later
// Mount fails with ErrSceneReleased. Use WithSceneFactory to remount.
func WithScene(s Scene) Option {
	return func(e *Engine) { e.sceneOpt = s }
}

// WithSceneFactory builds a fresh scene on every Mount that attaches a
// render loop. It takes precedence over WithScene.
func WithSceneFactory(fn func() (Scene, error)) Option {
	return func(e *Engine) { e.newScene = fn }
}

// NewEngine creates an unmounted engine.
func NewEngine(cfg Config, env Environment, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		env:      env,
		viewport: Vec2{X: float64(cfg.Viewport.Width), Y: float64(cfg.Viewport.Height)},
		debug:    cfg.Debug,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		if e.debug {
			e.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		} else {
			e.log = discardLogger
		}
	}
	if e.input == nil {
		e.input = NewEbitenInput()
	}
	if e.env == nil {
		e.env = EbitenEnvironment{ForceReducedMotion: cfg.ReducedMotion, FallbackWidth: e.viewport.X}
	}
	return e
}

// Mount detects capabilities, starts scrolling, builds the configured
// sections and starts the intro. It fails with ErrAlreadyActive if another
// engine's smooth scroller is running. Mounting a mounted engine is a no-op.
func (e *Engine) Mount() error {
	if e.mounted {
		return nil
	}
	e.caps = Detect(e.env, e.cfg.Breakpoint)
	if e.cfg.ReducedMotion {
		e.caps.ReducedMotion = true
	}
	if e.wantsRenderLoop() && e.newScene == nil && e.sceneSpent {
		return fmt.Errorf("mount: %w", ErrSceneReleased)
	}

	e.registry = NewTriggerRegistry(e.viewport.Y)
	e.registry.SetLogger(e.log)
	e.registry.SetEventSink(e)
	e.registry.SetRelayout(e.relayout)

	if e.caps.FullMotion() {
		smooth := NewSmoothScroller()
		if err := smooth.Start(e.cfg.Scroll.ScrollConfig()); err != nil {
			return fmt.Errorf("mount: %w", err)
		}
		e.scroller = smooth
	} else {
		e.scroller = NewNativeScroller()
	}
	e.scroller.Subscribe(e.registry.Reevaluate)

	e.lock = NewScrollLock(Unlocked, e.scroller, e.registry)
	e.lock.OnChange = func(s LockState) {
		e.log.Debug("scroll lock changed", "state", s.String())
		e.EmitEvent(Event{Type: EventLockChanged, Locked: s == Locked})
	}
	e.mounted = true
	e.log.Info("engine mounted",
		"reduced_motion", e.caps.ReducedMotion,
		"narrow_viewport", e.caps.NarrowViewport,
		"sections", len(e.cfg.Sections))

	e.mountRenderLoop()

	for _, sc := range e.cfg.Sections {
		if _, err := e.MountSection(SectionFromConfig(sc)); err != nil {
			e.log.Warn("section skipped", "id", sc.ID, "err", err)
		}
	}

	if e.cfg.Intro.Enabled {
		e.startIntro()
	}
	return nil
}

func (e *Engine) wantsRenderLoop() bool {
	return e.cfg.Render.Enabled && e.caps.FullMotion()
}

func (e *Engine) mountRenderLoop() {
	if !e.wantsRenderLoop() {
		return
	}
	scene, err := e.buildScene()
	if err != nil {
		e.log.Warn("scene unavailable", "err", err)
		return
	}
	e.scene = scene
	e.renderLoop = NewRenderLoop(e.scene, RenderLoopConfig{
		PointerSmoothing: e.cfg.Render.PointerSmoothing,
		ScrollSmoothing:  e.cfg.Render.ScrollSmoothing,
		Viewport:         e.viewport,
	})
	e.renderLoop.Attach(&e.ticker)
}

// buildScene returns the scene for this mount. A WithScene scene is marked
// spent, since detaching the render loop releases it.
func (e *Engine) buildScene() (Scene, error) {
	switch {
	case e.newScene != nil:
		return e.newScene()
	case e.sceneOpt != nil:
		e.sceneSpent = true
		return e.sceneOpt, nil
	}
	src, err := e.shaderSource()
	if err != nil {
		return nil, err
	}
	return NewShaderScene(src), nil
}

// detachRenderLoop stops the render loop and drops the scene it released.
func (e *Engine) detachRenderLoop() {
	if e.renderLoop != nil {
		e.renderLoop.Detach()
		e.renderLoop = nil
	}
	e.scene = nil
}

func (e *Engine) shaderSource() ([]byte, error) {
	if e.cfg.Render.Shader == "" {
		return nil, nil
	}
	src, err := os.ReadFile(e.cfg.Render.Shader)
	if err != nil {
		return nil, fmt.Errorf("read shader: %w", err)
	}
	return src, nil
}

func (e *Engine) startIntro() {
	var ready *Ready
	if r, ok := e.scene.(Readier); ok && e.renderLoop != nil {
		ready = r.Ready()
	}
	e.intro = NewIntro(e.lock, &e.clock, IntroOptions{
		Ready:   ready,
		Timeout: e.cfg.Intro.Timeout,
		Hold:    e.cfg.Intro.Hold,
	})
	e.intro.OnComplete = func(err error) {
		e.EmitEvent(Event{Type: EventIntroComplete, Err: err})
		if err != nil {
			e.log.Warn("intro forced complete", "err", err)
			e.degrade()
			return
		}
		e.log.Debug("intro complete")
	}
	e.intro.Start(&e.ticker)
}

// degrade switches to the reduced-motion path after a dependency failed
// to initialize: native scrolling at the current offset, no render loop.
func (e *Engine) degrade() {
	e.caps.ReducedMotion = true
	e.detachRenderLoop()
	if _, ok := e.scroller.(*SmoothScroller); !ok {
		return
	}
	st := e.scroller.State()
	limit := e.scroller.Limit()
	e.scroller.Stop()

	native := NewNativeScroller()
	native.SetLimit(limit)
	native.ScrollTo(st.Virtual, 0, nil)
	native.Subscribe(e.registry.Reevaluate)
	e.scroller = native
	e.lock.Rebind(native)
}

// Unmount tears everything down. The scroll lock is released
// unconditionally, whatever is in flight, so the page can never be left
// unscrollable. After Unmount no trigger, frame or timer callback fires.
func (e *Engine) Unmount() {
	if !e.mounted {
		return
	}
	// Cleared first so section teardown skips relayout and refresh passes.
	e.mounted = false
	if e.intro != nil {
		e.intro.Cancel()
		e.intro = nil
	}
	for _, s := range e.sections.clear() {
		s.teardown.Run()
	}
	e.registry.Clear()
	e.detachRenderLoop()
	e.lock.Unlock()
	e.scroller.Stop()
	e.clock.Reset()
	e.ticker.Clear()
	e.layout = nil
	e.docH = 0
	e.log.Info("engine unmounted")
}

// Mounted reports whether Mount has succeeded and Unmount not yet run.
func (e *Engine) Mounted() bool { return e.mounted }

// LockScroll blocks scrolling and freezes triggers.
func (e *Engine) LockScroll() {
	if e.mounted {
		e.lock.Lock()
	}
}

// UnlockScroll restores scrolling and re-measures triggers.
func (e *Engine) UnlockScroll() {
	if e.mounted {
		e.lock.Unlock()
	}
}

// ScrollLocked reports whether scrolling is blocked.
func (e *Engine) ScrollLocked() bool {
	return e.mounted && e.lock.Locked()
}

// ScrollTo moves the page to y over duration seconds (ExpoOut easing).
func (e *Engine) ScrollTo(y, duration float64) {
	if e.mounted && !e.lock.Locked() {
		e.scroller.ScrollTo(y, duration, nil)
	}
}

// Update runs one frame: input, scroll smoothing, trigger pass, frame
// callbacks (timelines, render loops, intro), then timers. Each stage
// consumes the previous stage's output.
func (e *Engine) Update(dt float64) {
	if !e.mounted {
		return
	}
	e.processInput()
	st := e.scroller.Advance(dt)
	e.ticker.Tick(dt)
	e.clock.Advance(dt)

	if e.debug {
		e.stats = frameStats{
			state:     st,
			triggers:  e.registry.Len(),
			callbacks: e.ticker.Len(),
			timers:    e.clock.Pending(),
			locked:    e.lock.Locked(),
		}
		e.debugLog()
	}
}

func (e *Engine) processInput() {
	e.inputBuf = e.input.Poll(e.inputBuf[:0])
	locked := e.lock.Locked()
	for _, ev := range e.inputBuf {
		switch ev.Kind {
		case InputKindWheel:
			if !locked {
				e.scroller.AddDelta(InputWheel, ev.DY)
			}
		case InputKindTouch:
			if !locked {
				e.scroller.AddDelta(InputTouch, ev.DY)
			}
		case InputKindPointer:
			if e.renderLoop != nil {
				e.renderLoop.SetPointer(ev.X, ev.Y)
			}
		}
	}
}

// Resize updates the viewport and re-measures layout and triggers.
// Capabilities are not re-detected.
func (e *Engine) Resize(w, h float64) {
	if w == e.viewport.X && h == e.viewport.Y {
		return
	}
	e.viewport = Vec2{X: w, Y: h}
	if !e.mounted {
		return
	}
	e.registry.SetViewportHeight(h)
	if e.renderLoop != nil {
		e.renderLoop.SetViewport(w, h)
	}
	e.relayout()
	e.registry.Refresh()
}

// relayout stacks section boxes top to bottom and updates the scroll limit.
func (e *Engine) relayout() {
	y := 0.0
	for _, b := range e.layout {
		r, _ := b.Bounds()
		b.Layout(Rect{X: 0, Y: y, Width: e.viewport.X, Height: r.Height})
		y += b.FlowHeight()
	}
	e.docH = y
	e.scroller.SetLimit(y - e.viewport.Y)
}

// EmitEvent forwards e to every configured sink. It lets the engine act as
// the registry's sink.
func (e *Engine) EmitEvent(ev Event) {
	e.sink.EmitEvent(ev)
}

// Capabilities returns the flags detected at mount, updated if the engine
// fell back to reduced motion.
func (e *Engine) Capabilities() CapabilityFlags { return e.caps }

// ScrollState returns the current scroll state.
func (e *Engine) ScrollState() ScrollState {
	if e.scroller == nil {
		return ScrollState{}
	}
	return e.scroller.State()
}

// Scroller returns the active scroller, or nil before Mount.
func (e *Engine) Scroller() Scroller { return e.scroller }

// Registry returns the trigger registry, or nil before Mount.
func (e *Engine) Registry() *TriggerRegistry { return e.registry }

// Ticker returns the per-frame callback list.
func (e *Engine) Ticker() *Ticker { return &e.ticker }

// Clock returns the frame-advanced timer clock.
func (e *Engine) Clock() *Clock { return &e.clock }

// RenderLoop returns the attached render loop, or nil.
func (e *Engine) RenderLoop() *RenderLoop { return e.renderLoop }

// Intro returns the running or finished intro, or nil.
func (e *Engine) Intro() *Intro { return e.intro }

// Viewport returns the current viewport size.
func (e *Engine) Viewport() Vec2 { return e.viewport }

// DocumentHeight returns the laid-out height of all sections.
func (e *Engine) DocumentHeight() float64 { return e.docH }

// Sections returns the mounted sections in mount order.
func (e *Engine) Sections() []*Section {
	out := make([]*Section, 0, e.sections.len())
	e.sections.each(func(_ handle, s **Section) {
		out = append(out, *s)
	})
	return out
}
