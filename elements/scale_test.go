package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/magda-music-go/theory"
)

func TestNewScale(t *testing.T) {
	tests := []struct {
		name     string
		tonic    string
		kind     string
		expected []string
		rendered string
	}{
		{"C", "C", "major", []string{"C", "D", "E", "F", "G", "A", "B"}, "C Scale: C D E F G A B"},
		{"C", "C", "", []string{"C", "D", "E", "F", "G", "A", "B"}, "C Scale: C D E F G A B"},
		{"A", "A", "minor", []string{"A", "B", "C", "D", "E", "F", "G"}, "A Scale: A B C D E F G"},
		{"Bb", "Bb4", "major", []string{"Bb", "C", "D", "Eb", "F", "G", "A"}, "Bb Scale: Bb C D Eb F G A"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" "+tt.kind, func(t *testing.T) {
			s, err := NewScale(tt.name, tt.tonic, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s.Pitches())
			assert.Equal(t, tt.rendered, s.String())
		})
	}
}

func TestNewScale_Kind(t *testing.T) {
	s, err := NewScale("A", "A", "minor")
	require.NoError(t, err)
	assert.Equal(t, theory.Minor, s.Kind())
}

func TestNewScale_Errors(t *testing.T) {
	_, err := NewScale("C", "C", "dorian")
	assert.ErrorIs(t, err, ErrUnsupportedScaleKind)

	_, err = NewScale("X", "X", "major")
	assert.ErrorIs(t, err, ErrInvalidPitch)

	_, err = NewScale(" ", "C", "major")
	assert.ErrorIs(t, err, ErrEmptyName)
}
