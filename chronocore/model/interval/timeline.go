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

import "sync"

// Timeline is the capability surface an interval needs from its temporal
// axis: a total order plus the smallest forward step. The interval algebra
// never inspects temporal values directly, so any discrete axis (dates,
// timestamps, plain integers) can back an interval by implementing these
// three methods.
//
// Implementations MUST be stateless or internally synchronized; a single
// Timeline value is shared by every interval built over it.
type Timeline[T comparable] interface {
	// IsBefore reports whether a is strictly earlier than b.
	IsBefore(a, b T) bool

	// IsSimultaneous reports whether a and b denote the same instant.
	IsSimultaneous(a, b T) bool

	// StepForward returns the smallest representable instant after t.
	StepForward(t T) T
}

// IsAfter reports whether a is strictly later than b on the timeline.
func IsAfter[T comparable](tl Timeline[T], a, b T) bool {
	return tl.IsBefore(b, a)
}

// Factory builds intervals over one timeline. Specialized chronologies may
// register a Factory to control how spans between two instants are
// materialized; everything else goes through the generic fallback.
type Factory[T comparable] interface {
	// Between returns the half-open span [start, end) on the factory's
	// timeline: closed at start, open at end. Construction fails when
	// start is after end.
	Between(start, end T) (Interval[T], error)
}

// registry maps Timeline values to their registered Factory. Both sides
// are stored as any because the type parameter is erased at the map
// boundary; On restores it via a checked assertion.
var registry struct {
	sync.RWMutex
	factories map[any]any
}

// Register installs a specialized factory for the given timeline,
// replacing any earlier registration. The timeline value itself is the
// registry key, so it must be comparable (interface values backed by
// pointer or empty-struct implementations are).
func Register[T comparable](tl Timeline[T], f Factory[T]) {
	registry.Lock()
	defer registry.Unlock()
	if registry.factories == nil {
		registry.factories = make(map[any]any)
	}
	registry.factories[tl] = f
}

// On returns the interval factory for the given timeline: the registered
// one when present, otherwise the generic fallback producing plain
// half-open intervals.
func On[T comparable](tl Timeline[T]) Factory[T] {
	registry.RLock()
	f, ok := registry.factories[tl]
	registry.RUnlock()

	if ok {
		if typed, ok := f.(Factory[T]); ok {
			return typed
		}
	}
	return genericFactory[T]{timeline: tl}
}

// genericFactory is the fallback Factory: it builds plain half-open
// intervals directly from the boundary constructors.
type genericFactory[T comparable] struct {
	timeline Timeline[T]
}

// Between implements Factory.
func (g genericFactory[T]) Between(start, end T) (Interval[T], error) {
	return New[T](g.timeline, Closed(start), Open(end))
}
