package theory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPitch is returned when a string cannot be parsed as a pitch
var ErrInvalidPitch = errors.New("invalid pitch")

// maxAccidentals bounds how many sharps or flats a parsed pitch may carry
const maxAccidentals = 4

// maxOctave is the highest octave ParsePitch accepts
const maxOctave = 1 << 20

// implicitOctave is used for arithmetic on pitches parsed without an octave
const implicitOctave = 4

const stepNames = "CDEFGAB"

// Semitone offset from C for each natural step
var stepSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// Pitch is a spelled pitch: a letter step, a signed accidental count
// (positive = sharps, negative = flats) and an optional octave.
// Pitches are comparable; two pitches are identical when spelling and octave match.
type Pitch struct {
	step      int
	alter     int
	octave    int
	hasOctave bool
}

// ParsePitch parses strings such as "C4", "F#", "Bb3", "E-5" or "g##2"
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Pitch{}, fmt.Errorf("%w: empty string", ErrInvalidPitch)
	}

	step := strings.IndexByte(stepNames, upper(s[0]))
	if step < 0 {
		return Pitch{}, fmt.Errorf("%w: %q: unknown step %q", ErrInvalidPitch, s, s[0])
	}

	p := Pitch{step: step}
	rest := s[1:]

	// Accidentals: all sharps or all flats, never mixed
	var kind byte
	for len(rest) > 0 && isAccidental(rest[0]) {
		c := rest[0]
		if c == '-' {
			c = 'b'
		}
		if kind != 0 && kind != c {
			return Pitch{}, fmt.Errorf("%w: %q: mixed accidentals", ErrInvalidPitch, s)
		}
		kind = c
		if c == '#' {
			p.alter++
		} else {
			p.alter--
		}
		rest = rest[1:]
	}
	if abs(p.alter) > maxAccidentals {
		return Pitch{}, fmt.Errorf("%w: %q: too many accidentals", ErrInvalidPitch, s)
	}

	if rest == "" {
		return p, nil
	}

	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return Pitch{}, fmt.Errorf("%w: %q: bad octave %q", ErrInvalidPitch, s, rest)
		}
	}
	octave, err := strconv.Atoi(rest)
	if err != nil || octave > maxOctave {
		return Pitch{}, fmt.Errorf("%w: %q: bad octave %q", ErrInvalidPitch, s, rest)
	}
	p.octave = octave
	p.hasOctave = true

	return p, nil
}

// MustParsePitch is like ParsePitch but panics on error
func MustParsePitch(s string) Pitch {
	p, err := ParsePitch(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the pitch name without octave, e.g. "F#" or "Bb"
func (p Pitch) Name() string {
	var b strings.Builder
	b.WriteByte(stepNames[p.step])
	switch {
	case p.alter > 0:
		b.WriteString(strings.Repeat("#", p.alter))
	case p.alter < 0:
		b.WriteString(strings.Repeat("b", -p.alter))
	}
	return b.String()
}

// NameWithOctave returns the name followed by the octave when the pitch has one
func (p Pitch) NameWithOctave() string {
	if !p.hasOctave {
		return p.Name()
	}
	return p.Name() + strconv.Itoa(p.octave)
}

func (p Pitch) String() string {
	return p.NameWithOctave()
}

// Octave reports the octave and whether the pitch carries one
func (p Pitch) Octave() (int, bool) {
	return p.octave, p.hasOctave
}

// Accidental returns the signed accidental count
func (p Pitch) Accidental() int {
	return p.alter
}

// MIDI returns the MIDI key number (C4 = 60).
// Pitches without an octave are placed in octave 4.
func (p Pitch) MIDI() int {
	return (p.effectiveOctave()+1)*12 + stepSemitones[p.step] + p.alter
}

// Transpose shifts the pitch by a number of semitones (negative = down).
// The semitone count is spelled as the nearest simple interval plus whole octaves,
// so transposing by n and then by -n restores the original spelling.
func (p Pitch) Transpose(semitones int) Pitch {
	return p.TransposeInterval(IntervalFromSemitones(semitones))
}

// TransposeInterval shifts the pitch by a named interval, keeping letter-correct spelling
func (p Pitch) TransposeInterval(iv Interval) Pitch {
	steps := iv.generic - 1
	semitones := iv.semitones
	if iv.descending {
		steps, semitones = -steps, -semitones
	}

	absStep := p.effectiveOctave()*7 + p.step + steps
	octave := floorDiv(absStep, 7)
	step := absStep - octave*7

	target := p.MIDI() + semitones
	natural := (octave+1)*12 + stepSemitones[step]

	out := Pitch{step: step, alter: target - natural}
	if p.hasOctave {
		out.octave = octave
		out.hasOctave = true
	}
	return out
}

// WithOctave returns a copy of p placed in the given octave
func (p Pitch) WithOctave(octave int) Pitch {
	p.octave = octave
	p.hasOctave = true
	return p
}

func (p Pitch) effectiveOctave() int {
	if p.hasOctave {
		return p.octave
	}
	return implicitOctave
}

func isAccidental(c byte) bool {
	return c == '#' || c == 'b' || c == '-'
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
