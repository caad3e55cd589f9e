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

package format

import "fmt"

// ParseLog is the caller-owned parse cursor: it tracks the current
// position within the input and carries recoverable failure state out of a
// parse attempt. Recoverable parse failures are NEVER returned as Go
// errors by the codec; they are recorded here so that a composite parser
// can attempt fallback strategies or abort the overall parse with full
// position context.
//
// Positions are character (rune) indexes into the input, not byte offsets,
// so that non-ASCII digit glyph systems count the same way ASCII digits
// do.
//
// A ParseLog is mutable by design and MUST NOT be shared across concurrent
// parse invocations without external synchronization. The zero value is a
// ready-to-use cursor at position 0 with no error.
type ParseLog struct {
	position int
	errIndex int
	errMsg   string
	warning  bool
}

// NewParseLog returns a cursor positioned at the given start index with no
// recorded failure.
func NewParseLog(start int) *ParseLog {
	return &ParseLog{position: start, errIndex: -1}
}

// Position returns the current cursor position.
func (pl *ParseLog) Position() int {
	return pl.position
}

// SetPosition moves the cursor to the given index. The codec calls this
// after successfully consuming characters; callers may also reposition the
// cursor between fields.
func (pl *ParseLog) SetPosition(pos int) {
	pl.position = pos
}

// SetError records a recoverable parse failure at the given index. The
// cursor position itself is left unchanged so that the caller retains the
// exact context of the failed attempt.
func (pl *ParseLog) SetError(index int, msg string) {
	pl.errIndex = index
	pl.errMsg = msg
}

// IsError reports whether a failure has been recorded.
func (pl *ParseLog) IsError() bool {
	return pl.errMsg != ""
}

// ErrorIndex returns the input index at which the recorded failure
// occurred, or -1 when no failure has been recorded on a cursor created
// via NewParseLog. On a zero-value cursor it returns 0.
func (pl *ParseLog) ErrorIndex() int {
	return pl.errIndex
}

// ErrorMessage returns the recorded failure message, or the empty string
// when no failure has been recorded.
func (pl *ParseLog) ErrorMessage() string {
	return pl.errMsg
}

// SetWarning raises the warning flag. The codec raises it together with an
// error when the input ended before the field could even start ("missing
// digits"), a condition some composite parsers treat as softer than a
// malformed field.
func (pl *ParseLog) SetWarning() {
	pl.warning = true
}

// IsWarning reports whether the warning flag has been raised.
func (pl *ParseLog) IsWarning() bool {
	return pl.warning
}

// Reset clears failure state and the warning flag while keeping the
// current position, preparing the cursor for a fallback parse attempt.
func (pl *ParseLog) Reset() {
	pl.errIndex = -1
	pl.errMsg = ""
	pl.warning = false
}

// String returns a debugging representation of the cursor state.
func (pl *ParseLog) String() string {
	if pl.IsError() {
		return fmt.Sprintf("ParseLog{position:%d, error:%q@%d, warning:%v}", pl.position, pl.errMsg, pl.errIndex, pl.warning)
	}
	return fmt.Sprintf("ParseLog{position:%d}", pl.position)
}

// ResultSink accepts parsed field values. The codec stores the resolved
// absolute year under its bound element on success; a composite parser
// typically passes a sink that accumulates every field of a pass before
// assembling the final chronological value.
type ResultSink interface {
	// Put records the resolved value for the given element. A later Put
	// for the same element overwrites the earlier value.
	Put(e Element, value int)
}

// ParsedValues is the map-backed ResultSink used by callers that just want
// the parsed field values keyed by element name.
//
// ParsedValues is mutable and MUST NOT be shared across concurrent parse
// invocations without external synchronization.
type ParsedValues struct {
	values map[string]int
}

// Compile-time assertion that *ParsedValues implements ResultSink.
var _ ResultSink = (*ParsedValues)(nil)

// NewParsedValues returns an empty sink.
func NewParsedValues() *ParsedValues {
	return &ParsedValues{values: make(map[string]int)}
}

// Put implements ResultSink. A nil element is ignored.
func (pv *ParsedValues) Put(e Element, value int) {
	if e == nil {
		return
	}
	if pv.values == nil {
		pv.values = make(map[string]int)
	}
	pv.values[e.Name()] = value
}

// Get returns the value recorded for the element and whether one exists.
func (pv *ParsedValues) Get(e Element) (int, bool) {
	if e == nil || pv.values == nil {
		return 0, false
	}
	v, ok := pv.values[e.Name()]
	return v, ok
}

// Has reports whether a value has been recorded for the element.
func (pv *ParsedValues) Has(e Element) bool {
	_, ok := pv.Get(e)
	return ok
}

// Len returns the number of recorded elements.
func (pv *ParsedValues) Len() int {
	return len(pv.values)
}
