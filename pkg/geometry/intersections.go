package geometry

import (
	"fmt"
	"sort"
)

// Intersection pairs a ray parameter t with the shape that was struck.
// It refers to a shape owned by a world and must not outlive that world.
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

func (i Intersection) String() string {
	if i.Object == nil {
		return fmt.Sprintf("Intersection{t: %g}", i.T)
	}
	return fmt.Sprintf("Intersection{t: %g, shape: %T#%d}", i.T, i.Object, i.Object.ID())
}

// Intersections is a collection of intersections kept sorted ascending by t
type Intersections struct {
	items []Intersection
}

// NewIntersections builds a sorted collection from intersections in any order
func NewIntersections(xs ...Intersection) Intersections {
	var result Intersections
	for _, x := range xs {
		result.Insert(x)
	}
	return result
}

// Insert places x after any existing intersection with the same or smaller t
func (xs *Intersections) Insert(x Intersection) {
	i := sort.Search(len(xs.items), func(i int) bool {
		return xs.items[i].T > x.T
	})
	xs.items = append(xs.items, Intersection{})
	copy(xs.items[i+1:], xs.items[i:])
	xs.items[i] = x
}

// Merge inserts every intersection of other
func (xs *Intersections) Merge(other Intersections) {
	for _, x := range other.items {
		xs.Insert(x)
	}
}

// Len returns the number of intersections
func (xs Intersections) Len() int {
	return len(xs.items)
}

// At returns the i-th intersection in ascending t order
func (xs Intersections) At(i int) Intersection {
	return xs.items[i]
}

// All returns a copy of the intersections in ascending t order
func (xs Intersections) All() []Intersection {
	out := make([]Intersection, len(xs.items))
	copy(out, xs.items)
	return out
}

// Hit returns the visible intersection: the one with the smallest
// non-negative t. Intersections behind the ray origin are never a hit.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs.items {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
