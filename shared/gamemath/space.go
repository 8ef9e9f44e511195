package gamemath

// SpaceMapping converts between world units (Y up) and collision space
// pixels (Y down). Origin is the world position of the space's top-left corner.
type SpaceMapping struct {
	Origin Vec3
	Scale  float64 // pixels per world unit
}

// ToSpace maps a world point onto the collision plane. Z is dropped.
func (m SpaceMapping) ToSpace(p Vec3) (x, y float64) {
	return (p.X - m.Origin.X) * m.Scale, (m.Origin.Y - p.Y) * m.Scale
}

// FromSpace maps a collision-plane point back to the world, keeping z.
func (m SpaceMapping) FromSpace(x, y, z float64) Vec3 {
	return Vec3{
		X: x/m.Scale + m.Origin.X,
		Y: m.Origin.Y - y/m.Scale,
		Z: z,
	}
}

// RectToSpace returns the top-left and size in pixels of a box centred on
// center with the given world width and height.
func (m SpaceMapping) RectToSpace(center Vec3, w, h float64) (x, y, pw, ph float64) {
	x, y = m.ToSpace(Vec3{X: center.X - w/2, Y: center.Y + h/2})
	return x, y, w * m.Scale, h * m.Scale
}

// Overlaps reports whether two axis-aligned rectangles intersect with
// non-zero area.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}
