package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Intersect tests the ray against the box using the slab method and returns
// the parameter at which the ray enters the box. The entry parameter is
// negative when the ray origin lies inside the box. Boxes entirely behind the
// ray origin are reported as misses.
func (aabb AABB) Intersect(ray Ray) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Handle parallel rays (direction near zero)
		if math.Abs(direction) < 1e-12 {
			if origin < min || origin > max {
				return 0, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)

		// Equality is kept so that flat boxes (axis-aligned triangles) can still be hit
		if tMin > tMax {
			return 0, false
		}
	}

	// A zero direction leaves the interval unbounded: nothing can be hit
	if math.IsInf(tMin, -1) && math.IsInf(tMax, 1) {
		return 0, false
	}
	if tMax < 0 {
		return 0, false
	}
	return tMin, true
}

// Overlaps reports whether two boxes share any point. Boxes that only touch
// along a face, edge or corner overlap; the relation is symmetric.
func (aabb AABB) Overlaps(other AABB) bool {
	return !(aabb.Max.X < other.Min.X || aabb.Min.X > other.Max.X ||
		aabb.Max.Y < other.Min.Y || aabb.Min.Y > other.Max.Y ||
		aabb.Max.Z < other.Min.Z || aabb.Min.Z > other.Max.Z)
}

// Contains reports whether the point lies inside or on the box
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// Subdivide splits the box at its center into its 8 octants. Neighbouring
// octants share the split coordinate exactly, so together they tile the box.
// Octant i takes the upper half along X when bit 0 is set, Y for bit 1 and Z for bit 2.
func (aabb AABB) Subdivide() [8]AABB {
	mid := aabb.Center()
	var octants [8]AABB
	for i := 0; i < 8; i++ {
		lo, hi := aabb.Min, mid
		if i&1 != 0 {
			lo.X, hi.X = mid.X, aabb.Max.X
		}
		if i&2 != 0 {
			lo.Y, hi.Y = mid.Y, aabb.Max.Y
		}
		if i&4 != 0 {
			lo.Z, hi.Z = mid.Z, aabb.Max.Z
		}
		octants[i] = AABB{Min: lo, Max: hi}
	}
	return octants
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
