// Package object holds the drawable pieces of a match: the rink markings, the
// discs, goal particles and the text overlays.
package object

import (
	"io"
	"time"

	"github.com/tomz197/airhockey/internal/draw"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Spawner Spawner
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
	Writer io.Writer    // Direct terminal output for text overlays
}

// Drawable is anything that can paint itself.
type Drawable interface {
	Draw(ctx DrawContext) error
}

// Object is a drawable and updatable effect with its own lifetime.
type Object interface {
	Drawable

	// Update advances the object. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// Effects is a list of live objects plus the ones spawned during the current update.
type Effects struct {
	Objects []Object
	toSpawn []Object
}

// Spawn queues an object to be added after the current update cycle.
func (e *Effects) Spawn(obj Object) {
	e.toSpawn = append(e.toSpawn, obj)
}

// Update advances every object, drops and releases the expired ones, then adds
// everything spawned meanwhile.
func (e *Effects) Update(delta time.Duration) error {
	ctx := UpdateContext{Delta: delta, Spawner: e}
	kept := e.Objects[:0]
	for _, obj := range e.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(e.Objects[len(kept):])
	e.Objects = append(kept, e.toSpawn...)
	clear(e.toSpawn)
	e.toSpawn = e.toSpawn[:0]
	return nil
}

// Draw draws every live object.
func (e *Effects) Draw(ctx DrawContext) error {
	for _, obj := range e.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of live objects.
func (e *Effects) Len() int {
	return len(e.Objects)
}

// Reset releases and drops every object.
func (e *Effects) Reset() {
	for _, obj := range e.Objects {
		ReleaseObject(obj)
	}
	clear(e.Objects)
	e.Objects = e.Objects[:0]
	e.toSpawn = e.toSpawn[:0]
}
