package elements

import (
	"fmt"
	"slices"

	"github.com/Conceptual-Machines/magda-music-go/theory"
)

// Chord is an ordered set of pitches.
// Tones are unique by spelling and octave and keep insertion order.
type Chord struct {
	base
	tones []theory.Pitch
}

// NewChord builds a chord from pitch strings; repeated pitches are collapsed
func NewChord(name string, pitches []string) (*Chord, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	parsed, err := parsePitches(pitches)
	if err != nil {
		return nil, fmt.Errorf("chord %q: %w", name, err)
	}

	c := &Chord{base: b}
	for _, p := range parsed {
		c.add(p)
	}
	return c, nil
}

// NewChordFromSymbol spells a chord symbol such as "Am7" or "Em/G" with its root in octave.
// The symbol is used as the chord name.
func NewChordFromSymbol(symbol string, octave int) (*Chord, error) {
	pitches, err := theory.ChordSymbolPitches(symbol, octave)
	if err != nil {
		return nil, err
	}

	c := &Chord{base: base{name: symbol}}
	for _, p := range pitches {
		c.add(p)
	}
	return c, nil
}

// AddNote appends a tone. Adding a pitch that is already present is a no-op.
func (c *Chord) AddNote(pitch string) error {
	p, err := theory.ParsePitch(pitch)
	if err != nil {
		return err
	}
	c.add(p)
	return nil
}

// RemoveNote removes the tone matching pitch
func (c *Chord) RemoveNote(pitch string) error {
	p, err := theory.ParsePitch(pitch)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPitchNotFound, err)
	}

	i := slices.Index(c.tones, p)
	if i < 0 {
		return fmt.Errorf("%w: %s in %q", ErrPitchNotFound, p, c.name)
	}
	c.tones = slices.Delete(c.tones, i, i+1)
	return nil
}

// TransposeDiatonic shifts every tone in place by semitones
func (c *Chord) TransposeDiatonic(semitones int) {
	for i := range c.tones {
		c.tones[i] = c.tones[i].Transpose(semitones)
	}
}

// TransposeHarmonic shifts every tone in place by a named interval such as "P5" or "M3".
// On error the chord is left unchanged.
func (c *Chord) TransposeHarmonic(interval string) error {
	iv, err := theory.ParseInterval(interval)
	if err != nil {
		return err
	}
	for i := range c.tones {
		c.tones[i] = c.tones[i].TransposeInterval(iv)
	}
	return nil
}

// Pitches returns a copy of the tones in order
func (c *Chord) Pitches() []theory.Pitch {
	return slices.Clone(c.tones)
}

// MIDINotes returns the MIDI key numbers of the tones in order
func (c *Chord) MIDINotes() []int {
	notes := make([]int, len(c.tones))
	for i, p := range c.tones {
		notes[i] = p.MIDI()
	}
	return notes
}

func (c *Chord) String() string {
	return "Chord: " + joinPitches(c.tones)
}

func (c *Chord) add(p theory.Pitch) {
	if slices.Contains(c.tones, p) {
		return
	}
	c.tones = append(c.tones, p)
}
