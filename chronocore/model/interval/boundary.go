/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package interval

import (
	"fmt"
	"hash/maphash"
)

// Boundary is one endpoint of an interval: either infinite (no temporal
// value) or finite with a temporal value and an Edge deciding whether the
// value itself is included. Whether an infinite boundary stretches to the
// infinite past or future is determined by its role as a start or end
// within an interval, not by the boundary itself.
//
// A Boundary is an immutable value; copying it is safe and cheap. The zero
// value is Closed(zero T), a finite closed boundary at T's zero value.
type Boundary[T comparable] struct {
	temporal T
	edge     Edge
	infinite bool
}

// Infinite returns the boundary with no temporal value, representing an
// unbounded side of an interval.
func Infinite[T comparable]() Boundary[T] {
	return Boundary[T]{infinite: true}
}

// Closed returns a finite boundary that includes t.
func Closed[T comparable](t T) Boundary[T] {
	return Boundary[T]{temporal: t, edge: EdgeClosed}
}

// Open returns a finite boundary that excludes t.
func Open[T comparable](t T) Boundary[T] {
	return Boundary[T]{temporal: t, edge: EdgeOpen}
}

// IsInfinite reports whether the boundary carries no temporal value.
func (b Boundary[T]) IsInfinite() bool {
	return b.infinite
}

// IsOpen reports whether the boundary is finite and excludes its value.
// Infinite boundaries are neither open nor closed.
func (b Boundary[T]) IsOpen() bool {
	return !b.infinite && b.edge == EdgeOpen
}

// IsClosed reports whether the boundary is finite and includes its value.
// Infinite boundaries are neither open nor closed.
func (b Boundary[T]) IsClosed() bool {
	return !b.infinite && b.edge == EdgeClosed
}

// Edge returns the edge of a finite boundary and true, or the zero Edge
// and false for an infinite boundary.
func (b Boundary[T]) Edge() (Edge, bool) {
	if b.infinite {
		return EdgeClosed, false
	}
	return b.edge, true
}

// Temporal returns the temporal value of a finite boundary and true, or
// the zero value of T and false for an infinite boundary.
func (b Boundary[T]) Temporal() (T, bool) {
	if b.infinite {
		var zero T
		return zero, false
	}
	return b.temporal, true
}

// Equal reports whether two boundaries are the same: both infinite, or
// both finite with the same edge and the same temporal value.
func (b Boundary[T]) Equal(other Boundary[T]) bool {
	if b.infinite || other.infinite {
		return b.infinite && other.infinite
	}
	return b.edge == other.edge && b.temporal == other.temporal
}

// Hash returns a seed-dependent hash consistent with Equal: boundaries
// that compare equal hash identically for the same seed.
func (b Boundary[T]) Hash(seed maphash.Seed) uint64 {
	if b.infinite {
		return maphash.Comparable(seed, struct{ infinite bool }{true})
	}
	return maphash.Comparable(seed, struct {
		edge     Edge
		temporal T
	}{b.edge, b.temporal})
}

// Format renders the boundary's temporal value through f, or "∞" for an
// infinite boundary. The interval renderer adds the direction sign and the
// brackets; see Interval.Format.
func (b Boundary[T]) Format(f func(T) string) string {
	if b.infinite {
		return "∞"
	}
	return f(b.temporal)
}

// String returns a debugging representation such as "Closed(5)",
// "Open(5)" or "Infinite".
func (b Boundary[T]) String() string {
	if b.infinite {
		return "Infinite"
	}
	if b.edge == EdgeOpen {
		return fmt.Sprintf("Open(%v)", b.temporal)
	}
	return fmt.Sprintf("Closed(%v)", b.temporal)
}
