package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
// Negative sizes are treated as their absolute value.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// IntersectRay runs the slab test against a normalized direction. It returns
// the entry distance, or the exit distance when origin is inside the box.
func (a AABB) IntersectRay(origin, direction rl.Vector3, maxDistance float32) (float32, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	slab := func(o, d, lo, hi float32) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		return tmin <= tmax
	}

	if !slab(origin.X, direction.X, a.Min.X, a.Max.X) ||
		!slab(origin.Y, direction.Y, a.Min.Y, a.Max.Y) ||
		!slab(origin.Z, direction.Z, a.Min.Z, a.Max.Z) {
		return 0, false
	}
	if tmax < 0 || tmin > maxDistance {
		return 0, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return 0, false
	}
	return t, true
}

// FaceNormal returns the outward normal of the face nearest to a point on the
// surface.
func (a AABB) FaceNormal(point rl.Vector3) rl.Vector3 {
	epsilon := float32(0.001)
	switch {
	case abs(point.X-a.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case abs(point.X-a.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case abs(point.Y-a.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case abs(point.Y-a.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case abs(point.Z-a.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
