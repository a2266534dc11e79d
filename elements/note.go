package elements

import (
	"github.com/Conceptual-Machines/magda-music-go/theory"
)

// Note is a single pitch
type Note struct {
	base
	pitch theory.Pitch
}

// NewNote parses pitch (e.g. "C4", "F#3") into a Note named after the input
func NewNote(pitch string) (*Note, error) {
	p, err := theory.ParsePitch(pitch)
	if err != nil {
		return nil, err
	}
	return &Note{base: base{name: pitch}, pitch: p}, nil
}

// Transpose shifts the note in place by semitones (negative = down)
func (n *Note) Transpose(semitones int) {
	n.pitch = n.pitch.Transpose(semitones)
}

// Pitch returns the current pitch
func (n *Note) Pitch() theory.Pitch {
	return n.pitch
}

// MIDI returns the MIDI key number of the current pitch
func (n *Note) MIDI() int {
	return n.pitch.MIDI()
}

func (n *Note) String() string {
	return "Note: " + n.pitch.NameWithOctave()
}
