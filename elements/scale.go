package elements

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/magda-music-go/theory"
)

// Scale is the fixed pitch sequence of a major or natural minor scale
type Scale struct {
	base
	kind    theory.ScaleKind
	pitches []theory.Pitch
}

// NewScale builds a scale from a tonic and a kind ("major" or "minor"; empty means major)
func NewScale(name, tonic, kind string) (*Scale, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	k, err := theory.ParseScaleKind(kind)
	if err != nil {
		return nil, err
	}

	t, err := theory.ParsePitch(tonic)
	if err != nil {
		return nil, fmt.Errorf("scale %q tonic: %w", name, err)
	}

	pitches, err := theory.ScalePitches(t, k)
	if err != nil {
		return nil, err
	}
	return &Scale{base: b, kind: k, pitches: pitches}, nil
}

// Kind returns the scale kind
func (s *Scale) Kind() theory.ScaleKind {
	return s.kind
}

// Pitches returns the pitch names of the scale degrees, without octaves
func (s *Scale) Pitches() []string {
	out := make([]string, len(s.pitches))
	for i, p := range s.pitches {
		out[i] = p.Name()
	}
	return out
}

func (s *Scale) String() string {
	return s.name + " Scale: " + strings.Join(s.Pitches(), " ")
}
