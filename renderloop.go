package glide

// Scene is the 3D-scene collaborator a RenderLoop writes into. The scene
// owns shader compilation and draw submission; the loop only fills its
// uniform table and asks for a redraw.
type Scene interface {
	// Uniforms returns the table read by the next draw.
	Uniforms() map[string]any
	// RequestRedraw marks the scene dirty for the next Draw.
	RequestRedraw()
	// Release frees GPU-side resources. Called once, on detach.
	Release()
}

// Readier is implemented by scenes whose uniforms exist only after some
// initialization step completes.
type Readier interface {
	Ready() *Ready
}

// FrameState is the per-scene record a RenderLoop rewrites every frame.
// It is owned by exactly one loop and never shared across scenes.
type FrameState struct {
	Time float64
	// Pointer is the smoothed pointer position in [-1, 1], Y up.
	Pointer Vec2
	// Scroll is the smoothed scroll progress fed through SetScroll.
	Scroll float64

	Camera       Vec3
	MeshRotation Vec3
	MeshPosition Vec3

	// Params holds extra numeric uniforms, typically animated by a
	// Timeline through RenderLoop.Params.
	Params Params
}

// Uniform names written by every RenderLoop.
const (
	UniformTime     = "Time"
	UniformScroll   = "Scroll"
	UniformPointer  = "Pointer"
	UniformCamera   = "Camera"
	UniformRotation = "Rotation"
	UniformPosition = "Position"
)

// RenderLoopConfig tunes a RenderLoop.
type RenderLoopConfig struct {
	// PointerSmoothing and ScrollSmoothing are fixed per-frame lerp factors
	// in (0, 1]. They are not scaled by the frame delta, so smoothing
	// assumes a roughly constant frame rate.
	PointerSmoothing float64
	ScrollSmoothing  float64

	// Viewport is the screen size used to normalize pointer positions.
	Viewport Vec2

	// Apply derives camera and mesh state from the smoothed inputs.
	// Defaults to DefaultFrameApply.
	Apply func(fs *FrameState)
}

// DefaultRenderLoopConfig returns the stock smoothing factors.
func DefaultRenderLoopConfig() RenderLoopConfig {
	return RenderLoopConfig{
		PointerSmoothing: 0.05,
		ScrollSmoothing:  0.1,
		Apply:            DefaultFrameApply,
	}
}

// DefaultFrameApply dollies the camera with scroll, parallaxes it with the
// pointer and spins the mesh slowly over time.
func DefaultFrameApply(fs *FrameState) {
	fs.Camera = Vec3{
		X: fs.Pointer.X * 0.5,
		Y: fs.Pointer.Y * 0.3,
		Z: 5 - fs.Scroll*3,
	}
	fs.MeshRotation = Vec3{
		X: fs.Time*0.1 + fs.Pointer.Y*0.2,
		Y: fs.Time*0.15 + fs.Pointer.X*0.2,
	}
	fs.MeshPosition = Vec3{Y: -fs.Scroll * 2}
}

// RenderLoop samples scroll and pointer inputs every frame, smooths them
// and writes the result into one Scene.
type RenderLoop struct {
	scene Scene
	cfg   RenderLoopConfig
	state FrameState

	pointerTarget Vec2
	scrollTarget  float64

	frame    FrameHandle
	released bool
}

// NewRenderLoop creates a detached loop for scene.
func NewRenderLoop(scene Scene, cfg RenderLoopConfig) *RenderLoop {
	def := DefaultRenderLoopConfig()
	if cfg.PointerSmoothing <= 0 || cfg.PointerSmoothing > 1 {
		cfg.PointerSmoothing = def.PointerSmoothing
	}
	if cfg.ScrollSmoothing <= 0 || cfg.ScrollSmoothing > 1 {
		cfg.ScrollSmoothing = def.ScrollSmoothing
	}
	if cfg.Apply == nil {
		cfg.Apply = def.Apply
	}
	return &RenderLoop{
		scene: scene,
		cfg:   cfg,
		state: FrameState{Params: Params{}},
	}
}

// Attach subscribes the loop to t. Attaching an attached loop is a no-op.
func (r *RenderLoop) Attach(t *Ticker) {
	if r.released || r.frame.Active() {
		return
	}
	r.frame = t.Add(r.tick)
}

// Detach unsubscribes from the ticker and releases the scene's GPU
// resources before returning. Idempotent.
func (r *RenderLoop) Detach() {
	r.frame.Remove()
	if r.released {
		return
	}
	r.released = true
	if r.scene != nil {
		r.scene.Release()
	}
}

// Attached reports whether the loop is receiving frames.
func (r *RenderLoop) Attached() bool {
	return r.frame.Active()
}

// SetViewport sets the screen size used to normalize pointer input.
func (r *RenderLoop) SetViewport(w, h float64) {
	r.cfg.Viewport = Vec2{X: w, Y: h}
}

// SetPointer sets the pointer target from screen coordinates.
func (r *RenderLoop) SetPointer(x, y float64) {
	w, h := r.cfg.Viewport.X, r.cfg.Viewport.Y
	if w <= 0 || h <= 0 {
		return
	}
	r.pointerTarget = Vec2{
		X: clamp(x/w*2-1, -1, 1),
		Y: clamp(-(y/h*2 - 1), -1, 1),
	}
}

// SetScroll sets the scroll target, normally from a trigger's OnUpdate.
func (r *RenderLoop) SetScroll(progress float64) {
	r.scrollTarget = progress
}

// Params returns the Target timelines use to animate extra uniforms.
func (r *RenderLoop) Params() Target {
	return r.state.Params
}

// State returns a copy of the last written frame state.
func (r *RenderLoop) State() FrameState {
	return r.state
}

func (r *RenderLoop) tick(dt float64) {
	fs := &r.state
	fs.Time += dt
	fs.Pointer.X += (r.pointerTarget.X - fs.Pointer.X) * r.cfg.PointerSmoothing
	fs.Pointer.Y += (r.pointerTarget.Y - fs.Pointer.Y) * r.cfg.PointerSmoothing
	fs.Scroll += (r.scrollTarget - fs.Scroll) * r.cfg.ScrollSmoothing
	r.cfg.Apply(fs)

	if r.scene == nil {
		return
	}
	u := r.scene.Uniforms()
	if u == nil {
		return
	}
	u[UniformTime] = float32(fs.Time)
	u[UniformScroll] = float32(fs.Scroll)
	u[UniformPointer] = []float32{float32(fs.Pointer.X), float32(fs.Pointer.Y)}
	u[UniformCamera] = vec3Uniform(fs.Camera)
	u[UniformRotation] = vec3Uniform(fs.MeshRotation)
	u[UniformPosition] = vec3Uniform(fs.MeshPosition)
	for k, v := range fs.Params {
		u[k] = float32(v)
	}
	r.scene.RequestRedraw()
}

func vec3Uniform(v Vec3) []float32 {
	return []float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
