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
	"strings"

	"dirpx.dev/chrono/chronocore/errors"
)

// Interval is a span on a timeline delimited by two boundaries. Either
// side may be infinite; a finite side may include or exclude its value.
//
// An Interval is immutable after construction and safe for concurrent
// use. The zero value is unusable (nil timeline); build intervals through
// New or a Factory.
type Interval[T comparable] struct {
	start    Boundary[T]
	end      Boundary[T]
	timeline Timeline[T]
}

// New constructs an interval over the given timeline and validates it:
// the timeline must be non-nil, at least one boundary must be finite, the
// start must not be after the end, and two open boundaries at the same
// instant are rejected because they would denote a set that cannot even
// hold its own edges. A closed-open or open-closed pair at the same
// instant is allowed and denotes the empty interval.
func New[T comparable](tl Timeline[T], start, end Boundary[T]) (Interval[T], error) {
	var zero Interval[T]

	if tl == nil {
		return zero, &errors.ConfigError{Op: "New", Reason: "timeline must not be nil"}
	}
	if start.IsInfinite() && end.IsInfinite() {
		return zero, &errors.ConfigError{Op: "New", Reason: "interval must have at least one finite boundary"}
	}

	t1, startFinite := start.Temporal()
	t2, endFinite := end.Temporal()

	if startFinite && endFinite {
		if tl.IsBefore(t2, t1) {
			return zero, &errors.ConfigError{
				Op:     "New",
				Reason: fmt.Sprintf("start must not be after end: %v > %v", t1, t2),
			}
		}
		if start.IsOpen() && end.IsOpen() && tl.IsSimultaneous(t1, t2) {
			return zero, &errors.ConfigError{
				Op:     "New",
				Reason: fmt.Sprintf("open boundaries must not coincide: %v", t1),
			}
		}
	}

	return Interval[T]{start: start, end: end, timeline: tl}, nil
}

// Start returns the lower boundary.
func (iv Interval[T]) Start() Boundary[T] {
	return iv.start
}

// End returns the upper boundary.
func (iv Interval[T]) End() Boundary[T] {
	return iv.end
}

// TimelineOf returns the timeline the interval is defined over.
func (iv Interval[T]) TimelineOf() Timeline[T] {
	return iv.timeline
}

// WithStart returns a revalidated copy with the given lower boundary.
func (iv Interval[T]) WithStart(start Boundary[T]) (Interval[T], error) {
	return New[T](iv.timeline, start, iv.end)
}

// WithEnd returns a revalidated copy with the given upper boundary.
func (iv Interval[T]) WithEnd(end Boundary[T]) (Interval[T], error) {
	return New[T](iv.timeline, iv.start, end)
}

// WithStartTime returns a revalidated copy whose lower boundary sits at t.
// The existing edge is preserved; an infinite start becomes closed.
func (iv Interval[T]) WithStartTime(t T) (Interval[T], error) {
	if iv.start.IsOpen() {
		return iv.WithStart(Open(t))
	}
	return iv.WithStart(Closed(t))
}

// WithEndTime returns a revalidated copy whose upper boundary sits at t.
// The existing edge is preserved; an infinite end becomes closed.
func (iv Interval[T]) WithEndTime(t T) (Interval[T], error) {
	if iv.end.IsOpen() {
		return iv.WithEnd(Open(t))
	}
	return iv.WithEnd(Closed(t))
}

// Contains reports whether the instant t lies within the interval. Each
// finite boundary is checked against t in turn; an infinite boundary never
// excludes anything on its side.
func (iv Interval[T]) Contains(t T) bool {
	if t1, ok := iv.start.Temporal(); ok {
		if iv.start.IsClosed() {
			if iv.timeline.IsBefore(t, t1) {
				return false
			}
		} else if !IsAfter(iv.timeline, t, t1) {
			return false
		}
	}

	if t2, ok := iv.end.Temporal(); ok {
		if iv.end.IsClosed() {
			if IsAfter(iv.timeline, t, t2) {
				return false
			}
		} else if !iv.timeline.IsBefore(t, t2) {
			return false
		}
	}

	return true
}

// ContainsPtr reports whether the instant lies within the interval,
// treating an absent (nil) instant as not contained.
func (iv Interval[T]) ContainsPtr(t *T) bool {
	if t == nil {
		return false
	}
	return iv.Contains(*t)
}

// IsFinite reports whether both boundaries are finite.
func (iv Interval[T]) IsFinite() bool {
	return !iv.start.IsInfinite() && !iv.end.IsInfinite()
}

// IsEmpty reports whether the interval contains no instant at all: both
// boundaries finite and simultaneous, with exactly one of them open.
// A closed-closed pair at the same instant contains that instant, and two
// open boundaries never coincide by construction.
func (iv Interval[T]) IsEmpty() bool {
	t1, ok1 := iv.start.Temporal()
	t2, ok2 := iv.end.Temporal()
	if !ok1 || !ok2 {
		return false
	}
	if !iv.timeline.IsSimultaneous(t1, t2) {
		return false
	}
	return iv.start.IsOpen() != iv.end.IsOpen()
}

// CalculationBase returns the canonical half-open form of the interval:
// closed at the start, open at the end, spanning exactly the same set of
// instants. An open start is stepped forward to close it; a closed end is
// stepped forward to open it. Duration computation is defined over this
// base so that every representable span has exactly one measure.
//
// An interval with an infinite boundary has no finite duration and yields
// a configuration error. An already-canonical interval is returned
// unchanged.
func (iv Interval[T]) CalculationBase() (Interval[T], error) {
	var zero Interval[T]

	t1, ok1 := iv.start.Temporal()
	t2, ok2 := iv.end.Temporal()
	if !ok1 || !ok2 {
		return zero, &errors.ConfigError{Op: "CalculationBase", Reason: "infinite interval has no finite duration"}
	}

	if iv.start.IsClosed() && iv.end.IsOpen() {
		return iv, nil
	}

	if iv.start.IsOpen() {
		t1 = iv.timeline.StepForward(t1)
	}
	if iv.end.IsClosed() {
		t2 = iv.timeline.StepForward(t2)
	}

	return On[T](iv.timeline).Between(t1, t2)
}

// Steps returns the number of timeline steps the interval spans, measured
// over the canonical half-open base: the count of StepForward applications
// needed to walk from its start to its end. An empty interval spans zero
// steps; an infinite interval has no finite measure and yields a
// configuration error.
func (iv Interval[T]) Steps() (int, error) {
	base, err := iv.CalculationBase()
	if err != nil {
		return 0, err
	}

	t1, _ := base.start.Temporal()
	t2, _ := base.end.Temporal()

	steps := 0
	for base.timeline.IsBefore(t1, t2) {
		t1 = base.timeline.StepForward(t1)
		steps++
	}
	return steps, nil
}

// Equal reports whether two intervals have equal boundaries on the same
// timeline. Intervals denoting the same instant set in different shapes
// (for example [5,6) and [5,5]) compare as different; canonicalize via
// CalculationBase first when set equality is what matters.
func (iv Interval[T]) Equal(other Interval[T]) bool {
	return iv.timeline == other.timeline && iv.start.Equal(other.start) && iv.end.Equal(other.end)
}

// Hash returns a seed-dependent hash consistent with Equal. The boundary
// hashes are combined with distinct multipliers so that swapping start and
// end changes the result.
func (iv Interval[T]) Hash(seed maphash.Seed) uint64 {
	return 17*iv.start.Hash(seed) + 37*iv.end.Hash(seed)
}

// String renders the interval in bracket notation with the default
// formatting of T, always showing brackets: "[2020-01-01/2020-01-05)",
// "(-∞/5]". Use Format for custom value rendering or bracket policies.
func (iv Interval[T]) String() string {
	return iv.render(func(t T) string { return fmt.Sprint(t) }, BracketShowAlways)
}

// Format renders the interval with f applied to each finite boundary
// value and brackets governed by the policy. Infinite boundaries render
// as "-∞" and "+∞".
func (iv Interval[T]) Format(f func(T) string, policy BracketPolicy) string {
	return iv.render(f, policy)
}

func (iv Interval[T]) render(f func(T) string, policy BracketPolicy) string {
	brackets := Display(policy, iv)

	var sb strings.Builder

	if brackets {
		if iv.start.IsClosed() {
			sb.WriteByte('[')
		} else {
			sb.WriteByte('(')
		}
	}

	if iv.start.IsInfinite() {
		sb.WriteString("-∞")
	} else {
		sb.WriteString(iv.start.Format(f))
	}

	sb.WriteByte('/')

	if iv.end.IsInfinite() {
		sb.WriteString("+∞")
	} else {
		sb.WriteString(iv.end.Format(f))
	}

	if brackets {
		if iv.end.IsClosed() {
			sb.WriteByte(']')
		} else {
			sb.WriteByte(')')
		}
	}

	return sb.String()
}
