package glide

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultSceneShader is a Kage program that renders a lit sphere whose
// distance, rotation and offset follow the uniforms a RenderLoop writes.
const DefaultSceneShader = `//kage:unit pixels
package main

var Resolution vec2
var Time float
var Scroll float
var Pointer vec2
var Camera vec3
var Rotation vec3
var Position vec3
var Intensity float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := (dstPos.xy/Resolution)*2 - 1
	uv.x *= Resolution.x / Resolution.y
	uv.y = -uv.y

	center := vec2(Position.x-Camera.x, Position.y-Camera.y)
	radius := 1.6 / max(Camera.z, 0.5)
	d := length(uv-center) / radius
	if d > 1 {
		glow := 0.08 / (d * d)
		return vec4(vec3(0.2, 0.3, 0.6)*glow, 1)
	}

	z := sqrt(1 - d*d)
	n := vec3((uv-center)/radius, z)
	light := normalize(vec3(cos(Rotation.y), sin(Rotation.x), 1.2))
	diffuse := max(dot(n, light), 0)
	bands := 0.5 + 0.5*sin(n.y*12+Time+Scroll*6)
	base := mix(vec3(0.15, 0.2, 0.5), vec3(0.9, 0.4, 0.6), bands)
	k := 0.6 + 0.4*Intensity
	return vec4(base*(0.25+diffuse*k), 1)
}
`

// ShaderScene is a Scene backed by a Kage shader drawn over the whole
// screen. The shader compiles lazily on the first Draw; its uniform table
// exists only from then on, which is when Ready fires.
type ShaderScene struct {
	src      []byte
	shader   *ebiten.Shader
	uniforms map[string]any
	ready    *Ready
	dirty    bool
	released bool
	err      error

	op ebiten.DrawRectShaderOptions
}

// NewShaderScene creates a scene from Kage source. Empty src uses
// DefaultSceneShader.
func NewShaderScene(src []byte) *ShaderScene {
	if len(src) == 0 {
		src = []byte(DefaultSceneShader)
	}
	return &ShaderScene{src: src, ready: NewReady()}
}

// Ready fires once the shader has compiled.
func (s *ShaderScene) Ready() *Ready { return s.ready }

// Err returns the compilation error, if any.
func (s *ShaderScene) Err() error { return s.err }

// Uniforms returns nil until the shader has compiled.
func (s *ShaderScene) Uniforms() map[string]any { return s.uniforms }

// RequestRedraw marks the scene dirty.
func (s *ShaderScene) RequestRedraw() { s.dirty = true }

// Dirty reports whether a redraw was requested since the last Draw.
func (s *ShaderScene) Dirty() bool { return s.dirty }

// Compile builds the shader if it has not been built. A failed compile is
// remembered and not retried.
func (s *ShaderScene) Compile() error {
	if s.shader != nil || s.err != nil || s.released {
		return s.err
	}
	sh, err := ebiten.NewShader(s.src)
	if err != nil {
		s.err = fmt.Errorf("compile scene shader: %w", err)
		return s.err
	}
	s.shader = sh
	s.uniforms = make(map[string]any)
	s.ready.Signal()
	return nil
}

// Draw renders the scene over dst. A scene that failed to compile or was
// released draws nothing, which leaves the page without the effect.
func (s *ShaderScene) Draw(dst *ebiten.Image) {
	if s.released || s.Compile() != nil {
		return
	}
	b := dst.Bounds()
	s.uniforms["Resolution"] = []float32{float32(b.Dx()), float32(b.Dy())}
	s.op.Uniforms = s.uniforms
	dst.DrawRectShader(b.Dx(), b.Dy(), s.shader, &s.op)
	s.dirty = false
}

// Release deallocates the shader. Idempotent.
func (s *ShaderScene) Release() {
	if s.released {
		return
	}
	s.released = true
	if s.shader != nil {
		s.shader.Deallocate()
		s.shader = nil
	}
	s.uniforms = nil
}

// Released reports whether Release has been called.
func (s *ShaderScene) Released() bool { return s.released }
