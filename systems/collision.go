package systems

import (
	"math"

	"github.com/automoto/slambounce/components"
	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/automoto/slambounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// contactSkin is how close, in pixels, two boxes must be to count as touching.
const contactSkin = 0.5

// maxSubsteps bounds the sweep of a very fast continuous body.
const maxSubsteps = 64

// resolv's Check reports every object sharing a cell, so each candidate is
// filtered with an exact box test.
func overlapping(object *resolv.Object, dx, dy float64, candidates []*resolv.Object) []*resolv.Object {
	var out []*resolv.Object
	for _, other := range candidates {
		if other == object {
			continue
		}
		if gamemath.Overlaps(object.X+dx, object.Y+dy, object.W, object.H, other.X, other.Y, other.W, other.H) {
			out = append(out, other)
		}
	}
	return out
}

// checkBox returns the objects with any of tags that a box moved by dx, dy
// would overlap.
func checkBox(object *resolv.Object, dx, dy float64, tagList ...string) []*resolv.Object {
	check := object.Check(dx, dy, tagList...)
	if check == nil {
		return nil
	}
	return overlapping(object, dx, dy, check.Objects)
}

// moveX moves object horizontally by dx, stopping flush against the first
// blocking object. It returns the objects it ran into.
func moveX(object *resolv.Object, dx float64) (hits []*resolv.Object, blocked bool) {
	if dx == 0 {
		return nil, false
	}
	allowed := dx
	for _, other := range checkBox(object, dx, 0, tags.ResolvBlocking...) {
		var limit float64
		if dx > 0 {
			limit = other.X - (object.X + object.W)
		} else {
			limit = other.X + other.W - object.X
		}
		// Already overlapping: do not push further in.
		if limit*dx < 0 {
			limit = 0
		}
		if math.Abs(limit) <= math.Abs(allowed) {
			allowed = limit
		}
		hits = append(hits, other)
	}
	object.X += allowed
	object.Update()
	return hits, len(hits) > 0
}

// moveY is moveX for the vertical axis. Positive dy moves down the space.
func moveY(object *resolv.Object, dy float64) (hits []*resolv.Object, blocked bool) {
	if dy == 0 {
		return nil, false
	}
	allowed := dy
	for _, other := range checkBox(object, 0, dy, tags.ResolvBlocking...) {
		var limit float64
		if dy > 0 {
			limit = other.Y - (object.Y + object.H)
		} else {
			limit = other.Y + other.H - object.Y
		}
		if limit*dy < 0 {
			limit = 0
		}
		if math.Abs(limit) <= math.Abs(allowed) {
			allowed = limit
		}
		hits = append(hits, other)
	}
	object.Y += allowed
	object.Update()
	return hits, len(hits) > 0
}

// substeps returns how many slices a move of dx, dy is split into so that no
// slice is longer than half the box.
func substeps(object *resolv.Object, dx, dy float64, continuous bool) int {
	if !continuous || object.W <= 0 || object.H <= 0 {
		return 1
	}
	n := math.Ceil(math.Max(math.Abs(dx)/(object.W/2), math.Abs(dy)/(object.H/2)))
	return int(gamemath.Clamp(n, 1, maxSubsteps))
}

// touching reports whether two boxes are overlapping or within contactSkin.
func touching(a, b *resolv.Object) bool {
	return gamemath.Overlaps(a.X-contactSkin, a.Y-contactSkin, a.W+2*contactSkin, a.H+2*contactSkin, b.X, b.Y, b.W, b.H)
}

// entryOf returns the donburi entry stored on a resolv object.
func entryOf(object *resolv.Object) (*donburi.Entry, bool) {
	if object == nil {
		return nil, false
	}
	entry, ok := object.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return nil, false
	}
	return entry, true
}

// interactableOf returns the entry behind object when it is a live interactable.
func interactableOf(object *resolv.Object) (*donburi.Entry, bool) {
	entry, ok := entryOf(object)
	if !ok || !entry.HasComponent(components.Interactable) {
		return nil, false
	}
	if entry.HasComponent(components.Enemy) && !components.Enemy.Get(entry).Alive {
		return nil, false
	}
	return entry, true
}

// syncObject moves the collision box so it is centred on the body.
func syncObject(m gamemath.SpaceMapping, body *components.BodyData, object *resolv.Object) {
	x, y, _, _ := m.RectToSpace(body.Position, body.Width, body.Height)
	object.X, object.Y = x, y
	object.Update()
}

// syncBody copies the collision box position back to the body.
func syncBody(m gamemath.SpaceMapping, body *components.BodyData, object *resolv.Object) {
	p := m.FromSpace(object.X+object.W/2, object.Y+object.H/2, body.Position.Z)
	body.Position.X, body.Position.Y = p.X, p.Y
}
