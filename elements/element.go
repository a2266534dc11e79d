// Package elements models musical notes, chords, scales and instruments as
// simple values on top of the theory package.
//
// None of the types are safe for concurrent mutation.
package elements

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/magda-music-go/theory"
)

var (
	// Errors produced by the theory package, re-exported for callers of this package
	ErrInvalidPitch         = theory.ErrInvalidPitch
	ErrInvalidInterval      = theory.ErrInvalidInterval
	ErrUnsupportedScaleKind = theory.ErrUnsupportedScaleKind
	ErrInvalidChordSymbol   = theory.ErrInvalidChordSymbol

	ErrPitchNotFound    = errors.New("pitch not found in chord")
	ErrTypeKind         = errors.New("value is not a musical element")
	ErrEmptyName        = errors.New("empty element name")
	ErrContainmentCycle = errors.New("instrument would contain itself")
)

// Element is a musical element with a display name and a textual rendering.
// The set of implementations is closed: Note, Chord, Scale and Instrument.
type Element interface {
	Name() string
	String() string

	musicalElement()
}

var (
	_ Element = (*Note)(nil)
	_ Element = (*Chord)(nil)
	_ Element = (*Scale)(nil)
	_ Element = (*Instrument)(nil)
)

type base struct {
	name string
}

func newBase(name string) (base, error) {
	if strings.TrimSpace(name) == "" {
		return base{}, ErrEmptyName
	}
	return base{name: name}, nil
}

// Name returns the name the element was constructed with
func (b base) Name() string {
	return b.name
}

func (base) musicalElement() {}

func joinPitches(pitches []theory.Pitch) string {
	parts := make([]string, len(pitches))
	for i, p := range pitches {
		parts[i] = p.NameWithOctave()
	}
	return strings.Join(parts, " ")
}

func parsePitches(pitches []string) ([]theory.Pitch, error) {
	out := make([]theory.Pitch, 0, len(pitches))
	for _, s := range pitches {
		p, err := theory.ParsePitch(s)
		if err != nil {
			return nil, fmt.Errorf("pitch %d: %w", len(out), err)
		}
		out = append(out, p)
	}
	return out, nil
}
