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

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"dirpx.dev/chrono/chronocore/errors"
)

// NoYear is the sentinel value signaling "no year present" to Print.
// Passing it is a configuration error distinct from passing a plain
// negative year.
const NoYear = math.MinInt

// maxAbsorbedDigits caps how many digits a single non-strict parse may
// consume, bounding the pass over the input regardless of its length.
const maxAbsorbedDigits = 9

// TwoDigitYearCodec prints and parses an abbreviated (century-less) year
// field. Printing reduces an absolute year to its year-of-century and
// emits it with at least two digits in the configured digit-glyph system;
// parsing consumes a digit run and resolves a two-digit value back to an
// absolute year using a pivot year.
//
// A codec is immutable after construction and safe for concurrent use
// against distinct caller-owned cursors, sinks and buffers. Configuration
// is resolved per call from an AttributeQuery, or once up front via
// Specialize, which captures a "quick path" snapshot for high-volume use.
//
// Identity is deliberately narrow: two codecs are equal if and only if
// they are bound to the same element, regardless of reserved digits,
// glyph, leniency, protection or pivot year. See Equal.
type TwoDigitYearCodec struct {
	element       Element
	protectedMode bool

	// quick path members, resolved once by Specialize
	reserved        int
	zeroDigit       rune
	lenientMode     Leniency
	protectedLength int
	pivotYear       int
}

// NewTwoDigitYearCodec constructs a codec bound to the given year element.
// The element's name must start with "YEAR"; binding any other element is
// a configuration error. The codec starts with the default configuration:
// no reserved digits, ASCII zero glyph, smart leniency, no protected
// characters, and the unwindowed pivot sentinel 100.
func NewTwoDigitYearCodec(element Element) (*TwoDigitYearCodec, error) {
	return newTwoDigitYearCodec(element, false)
}

func newTwoDigitYearCodec(element Element, protectedMode bool) (*TwoDigitYearCodec, error) {
	if element == nil {
		return nil, &errors.ConfigError{Op: "NewTwoDigitYearCodec", Reason: "year element required, got nil"}
	}
	if !strings.HasPrefix(element.Name(), "YEAR") {
		return nil, &errors.ConfigError{
			Op:     "NewTwoDigitYearCodec",
			Reason: fmt.Sprintf("year element required, got %q", element.Name()),
		}
	}

	return &TwoDigitYearCodec{
		element:       element,
		protectedMode: protectedMode,
		zeroDigit:     DefaultZeroDigit,
		lenientMode:   LeniencySmart,
		pivotYear:     100,
	}, nil
}

// Element returns the chronological field this codec is bound to.
func (c *TwoDigitYearCodec) Element() Element {
	return c.element
}

// Print renders the year into buf and returns the number of characters
// written.
//
// When the resolved pivot year equals the sentinel 100 the year is
// printed unwindowed, with as many digits as it has. Otherwise the
// year-of-century (floor modulo 100, always in [0,99]) is printed, left-
// padded with one zero glyph when below 10 so that at least two digits
// appear. If the configured zero-digit glyph is not the ASCII '0', every
// emitted digit is shifted by the constant offset between the two glyphs.
//
// If positions is non-nil and buf additionally exposes a Len() int method
// (as *strings.Builder and *bytes.Buffer do), the half-open byte range
// written is recorded under the bound element.
//
// Passing NoYear or a negative year is a configuration error, as is a
// resolved pivot year below 100. Printing has no other failure modes.
func (c *TwoDigitYearCodec) Print(
	year int,
	buf io.StringWriter,
	attrs AttributeQuery,
	positions PositionTracker,
	quickPath bool,
) (int, error) {

	if year < 0 {
		if year == NoYear {
			return 0, &errors.ConfigError{Op: "Print", Reason: "format context has no year"}
		}
		return 0, &errors.ConfigError{
			Op:     "Print",
			Reason: fmt.Sprintf("negative year cannot be printed as two-digit-year: %d", year),
		}
	}

	pivot, err := c.resolvePivotYear(quickPath, attrs)
	if err != nil {
		return 0, err
	}

	windowed := pivot != 100
	yy := year
	if windowed {
		yy = floorMod(year, 100)
	}
	digits := strconv.Itoa(yy)

	zeroChar := c.zeroDigit
	if !quickPath {
		zeroChar = attrs.QueryZeroDigit(DefaultZeroDigit)
	}

	if zeroChar != '0' {
		diff := zeroChar - '0'
		shifted := make([]rune, 0, len(digits))
		for _, r := range digits {
			shifted = append(shifted, r+diff)
		}
		digits = string(shifted)
	}

	start := -1
	if lr, ok := buf.(interface{ Len() int }); ok {
		start = lr.Len()
	}

	printed := 0
	written := 0

	if windowed && yy < 10 {
		n, err := buf.WriteString(string(zeroChar))
		if err != nil {
			return printed, err
		}
		written += n
		printed++
	}

	n, err := buf.WriteString(digits)
	if err != nil {
		return printed, err
	}
	written += n
	printed += len([]rune(digits))

	if start != -1 && printed > 0 && positions != nil {
		positions.Add(ElementPosition{
			Element: ElementID(c.element.Name()),
			Start:   start,
			End:     start + written,
		})
	}

	return printed, nil
}

// Parse consumes a digit run from text at the cursor's position and
// records the resolved absolute year in result under the bound element.
//
// The usable input length is the character count minus the protected
// trailing-character count; digits inside the protected tail are never
// consumed. Strict leniency caps the run at 2 digits, all other modes at
// 9. When this codec reserves trailing digits for an adjacent field and
// no protected region is active, the whole contiguous digit run is first
// measured and the cap shrunk so that the reserved digits stay available.
//
// Exactly 2 consumed digits are interpreted as a year-of-century and
// resolved through the pivot year; longer runs are taken as already
// absolute years with no windowing applied.
//
// All recoverable failures (missing digits, no digit at the start, fewer
// than 2 digits) are reported through log: the cursor position is left
// unchanged and Parse returns nil. The only non-nil error return is the
// configuration-error class, raised when the resolved pivot year is below
// 100.
func (c *TwoDigitYearCodec) Parse(
	text string,
	log *ParseLog,
	attrs AttributeQuery,
	result ResultSink,
	quickPath bool,
) error {

	runes := []rune(text)
	length := len(runes)
	start := log.Position()

	protectedChars := c.protectedLength
	if !quickPath {
		protectedChars = attrs.QueryProtectedCharacters(0)
	}
	if protectedChars > 0 {
		length -= protectedChars
	}

	if start >= length {
		log.SetError(start, "missing digits for: "+c.element.Name())
		log.SetWarning()
		return nil
	}

	leniency := c.lenientMode
	if !quickPath {
		leniency = attrs.QueryLeniency(LeniencySmart)
	}
	effectiveMax := maxAbsorbedDigits
	if leniency.IsStrict() {
		effectiveMax = 2
	}

	zeroChar := c.zeroDigit
	if !quickPath {
		zeroChar = attrs.QueryZeroDigit(DefaultZeroDigit)
	}

	if c.reserved > 0 && protectedChars <= 0 {
		digitCount := 0

		// How long is the whole contiguous digit run?
		for i := start; i < length; i++ {
			digit := int(runes[i] - zeroChar)
			if digit >= 0 && digit <= 9 {
				digitCount++
			} else {
				break
			}
		}

		if digitCount-c.reserved < effectiveMax {
			effectiveMax = digitCount - c.reserved
		}
	}

	minPos := start + 2
	maxPos := start + effectiveMax
	if length < maxPos {
		maxPos = length
	}

	yearOfCentury := 0
	first := true
	pos := start

	for pos < maxPos {
		digit := int(runes[pos] - zeroChar)

		if digit >= 0 && digit <= 9 {
			yearOfCentury = yearOfCentury*10 + digit
			pos++
			first = false
		} else if first {
			log.SetError(start, "digit expected")
			return nil
		} else {
			break
		}
	}

	if pos < minPos {
		log.SetError(start, "not enough digits found for: "+c.element.Name())
		return nil
	}

	var value int

	if pos == start+2 {
		pivot, err := c.resolvePivotYear(quickPath, attrs)
		if err != nil {
			return err
		}
		value, err = ToYear(yearOfCentury, pivot)
		if err != nil {
			return err
		}
	} else {
		value = yearOfCentury // absolute year, no windowing
	}

	result.Put(c.element, value)
	log.SetPosition(pos)
	return nil
}

// WithElement returns a codec bound to the given element. The receiver is
// returned unchanged when it is protected from rebinding or when the
// target element is already the bound one; otherwise a fresh, unprotected
// codec with default configuration is returned. Rebinding to a non-year
// element is a configuration error.
func (c *TwoDigitYearCodec) WithElement(e Element) (*TwoDigitYearCodec, error) {
	if c.protectedMode || e == nil || e.Name() == c.element.Name() {
		return c, nil
	}
	return newTwoDigitYearCodec(e, false)
}

// Specialize captures a quick-path snapshot: a new codec carrying the
// attribute values resolved once, so that high-volume printing and
// parsing can skip per-call lookups. The element binding and protection
// flag are preserved; the receiver is not mutated.
//
// reserved is the count of digits a shared contiguous digit run must
// leave available for a following adjacent field. defaultPivot is the
// chronology's default pivot year, used when the attributes carry none.
// The resolved pivot is validated lazily at the first Print or Parse, not
// here, matching the per-call resolution of the slow path.
func (c *TwoDigitYearCodec) Specialize(attrs AttributeQuery, reserved int, defaultPivot int) *TwoDigitYearCodec {
	return &TwoDigitYearCodec{
		element:         c.element,
		protectedMode:   c.protectedMode,
		reserved:        reserved,
		zeroDigit:       attrs.QueryZeroDigit(DefaultZeroDigit),
		lenientMode:     attrs.QueryLeniency(LeniencySmart),
		protectedLength: attrs.QueryProtectedCharacters(0),
		pivotYear:       attrs.QueryPivotYear(defaultPivot),
	}
}

// Equal reports whether two codecs are bound to the same element. This is
// intentionally a strict subset of the full state: reserved digits, digit
// glyph, leniency, protected length, pivot year and the protection flag
// do NOT participate in identity, so a quick-path snapshot compares equal
// to the codec it was specialized from.
func (c *TwoDigitYearCodec) Equal(other *TwoDigitYearCodec) bool {
	if other == nil {
		return false
	}
	if c.element == nil || other.element == nil {
		return c.element == nil && other.element == nil
	}
	return c.element.Name() == other.element.Name()
}

// String returns a representation naming the bound element, such as
// "TwoDigitYearCodec[element=YEAR_OF_ERA]".
func (c *TwoDigitYearCodec) String() string {
	name := "<nil>"
	if c.element != nil {
		name = c.element.Name()
	}
	return "TwoDigitYearCodec[element=" + name + "]"
}

// Redacted returns the same representation as String.
func (c *TwoDigitYearCodec) Redacted() string {
	return c.String()
}

// TypeName returns "TwoDigitYearCodec".
func (c *TwoDigitYearCodec) TypeName() string {
	return "TwoDigitYearCodec"
}

// IsZero reports whether the codec is unbound, which only occurs for the
// zero value; constructed codecs always carry an element.
func (c *TwoDigitYearCodec) IsZero() bool {
	return c.element == nil
}

// Validate checks that the codec is bound to a year-like element and that
// its stored configuration is coherent. This mirrors the constructor
// checks so that zero values and manually assembled codecs are caught.
func (c *TwoDigitYearCodec) Validate() error {
	if c.element == nil {
		return &errors.ValidationError{Type: "TwoDigitYearCodec", Field: "element", Reason: "must not be nil"}
	}
	if !strings.HasPrefix(c.element.Name(), "YEAR") {
		return &errors.ValidationError{
			Type:   "TwoDigitYearCodec",
			Field:  "element",
			Reason: "must name a year field (prefix YEAR)",
			Value:  c.element.Name(),
		}
	}
	if c.reserved < 0 {
		return &errors.ValidationError{Type: "TwoDigitYearCodec", Field: "reserved", Reason: "must be non-negative", Value: c.reserved}
	}
	if c.protectedLength < 0 {
		return &errors.ValidationError{Type: "TwoDigitYearCodec", Field: "protectedLength", Reason: "must be non-negative", Value: c.protectedLength}
	}
	return nil
}

// ToYear resolves a year-of-century in [0,99] to an absolute year using
// the pivot year. For any fixed pivot the mapping covers a unique 100-year
// window ending at the pivot: values below the pivot's own year-of-century
// land in the pivot's century, all others fall back one century, so the
// boundary case equal to the pivot's year-of-century lands in the earlier
// century. For example, pivot 2027 maps 26 to 2026, 27 to 1927 and 28 to
// 1928.
//
// A pivot year below 100 or a year-of-century outside [0,99] is a
// configuration error.
func ToYear(yearOfCentury, pivotYear int) (int, error) {
	if pivotYear < 100 {
		return 0, &errors.ConfigError{
			Op:     "ToYear",
			Reason: fmt.Sprintf("pivot year must not be smaller than 100: %d", pivotYear),
		}
	}
	if yearOfCentury < 0 || yearOfCentury > 99 {
		return 0, &errors.ConfigError{
			Op:     "ToYear",
			Reason: fmt.Sprintf("year-of-century out of range [0,99]: %d", yearOfCentury),
		}
	}

	var century int
	if yearOfCentury >= pivotYear%100 {
		century = (pivotYear/100 - 1) * 100
	} else {
		century = (pivotYear / 100) * 100
	}

	return century + yearOfCentury, nil
}

func (c *TwoDigitYearCodec) resolvePivotYear(quickPath bool, attrs AttributeQuery) (int, error) {
	py := c.pivotYear
	if !quickPath {
		py = attrs.QueryPivotYear(c.pivotYear)
	}

	if py < 100 {
		return 0, &errors.ConfigError{
			Op:     "resolvePivotYear",
			Reason: fmt.Sprintf("pivot year must not be smaller than 100: %d", py),
		}
	}

	return py, nil
}

// floorMod returns v modulo m with the sign of m, so the result is always
// in [0,m) for positive m even when v is negative.
func floorMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
