package loop

import "time"

// Max render resolution. Larger terminals get a centered, bordered canvas.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Shutdown
const (
	ShutdownDisplay = 3 * time.Second // How long the shutdown notice stays up before the session ends
)

// Goal celebration
const (
	goalParticles        = 24
	goalParticleSpeed    = 300.0 // Logical units per second
	goalParticleLifetime = 0.6   // Seconds
)

// minSleep bounds the loop's idle wait so it never spins.
const minSleep = time.Millisecond
