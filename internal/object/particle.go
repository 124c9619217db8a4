package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/airhockey/internal/draw"
	"github.com/tomz197/airhockey/internal/vmath"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect.
type Particle struct {
	Pos         vmath.Vec2
	Vel         vmath.Vec2 // Logical units per second
	Lifetime    float64    // Seconds remaining
	MaxLifetime float64    // Initial lifetime (for fade calculation)
	Drag        float64    // Velocity decay per 1/60 s (1.0 = no drag)
	Color       draw.Color
	Fade        bool // Whether to disappear in the last quarter of the lifetime
}

// NewParticle creates a single particle from the pool.
func NewParticle(pos, vel vmath.Vec2, lifetime float64, color draw.Color) *Particle {
	p := particlePool.Get().(*Particle)
	p.Pos = pos
	p.Vel = vel
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Color = color
	p.Fade = true
	return p
}

// Release returns the particle to the pool for reuse.
func (p *Particle) Release() {
	particlePool.Put(p)
}

var burstColors = []draw.Color{draw.ColorOrange, draw.ColorYellow, draw.ColorWhite}

// SpawnBurst creates particles in a circular burst pattern around at, e.g. where
// the puck crossed a goal line. rng may be nil to use the global source.
func SpawnBurst(at vmath.Vec2, count int, speed, lifetime float64, rng *rand.Rand, spawner Spawner) {
	if spawner == nil {
		return
	}
	float := rand.Float64
	intn := rand.Intn
	if rng != nil {
		float = rng.Float64
		intn = rng.Intn
	}

	for _i := 0; _i < count; _i++ {
		angle := float() * 2 * math.Pi
		spd := speed * (0.5 + float())         // 50% to 150%
		life := lifetime * (0.5 + float()*0.5) // 50% to 100%

		vel := vmath.V(math.Cos(angle), math.Sin(angle)).Scale(spd)
		spawner.Spawn(NewParticle(at, vel, life, burstColors[intn(len(burstColors))]))
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	p.Vel = p.Vel.Scale(math.Pow(p.Drag, dt*60)) // Normalize drag to ~60fps
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	return false, nil
}

// Draw renders the particle as a pixel on the canvas.
func (p *Particle) Draw(ctx DrawContext) error {
	if p.Fade && p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25 {
		return nil
	}
	ctx.Canvas.Set(p.Pos, p.Color)
	return nil
}
