package vmath

// AABB is an axis-aligned box described by its center and full size
type AABB struct {
	Center Vec2F
	Size   Vec2F
}

// Min returns the bottom-left corner
func (b AABB) Min() Vec2F {
	return Vec2F{b.Center.X - b.Size.X/2, b.Center.Y - b.Size.Y/2}
}

// Max returns the top-right corner
func (b AABB) Max() Vec2F {
	return Vec2F{b.Center.X + b.Size.X/2, b.Center.Y + b.Size.Y/2}
}

// Overlaps reports a strict overlap; boxes that only touch along an edge do not collide
func (b AABB) Overlaps(o AABB) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return bMin.X < oMax.X && bMax.X > oMin.X &&
		bMin.Y < oMax.Y && bMax.Y > oMin.Y
}
