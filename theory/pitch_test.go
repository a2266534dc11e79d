package theory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePitch(t *testing.T) {
	tests := []struct {
		input     string
		expected  string
		hasOctave bool
	}{
		{"C4", "C4", true},
		{"c4", "C4", true},
		{"F#", "F#", false},
		{"Bb3", "Bb3", true},
		{"bb3", "Bb3", true},
		{"E-5", "Eb5", true},
		{"g##2", "G##2", true},
		{"Dbb", "Dbb", false},
		{" A0 ", "A0", true},
		{"B", "B", false},
		{"C10", "C10", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePitch(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.String())
			_, hasOctave := p.Octave()
			assert.Equal(t, tt.hasOctave, hasOctave)
		})
	}
}

func TestPitch_Accidental(t *testing.T) {
	assert.Equal(t, 2, MustParsePitch("F##4").Accidental())
	assert.Equal(t, -1, MustParsePitch("E-").Accidental())
	assert.Equal(t, 0, MustParsePitch("A").Accidental())
}

func TestParsePitch_Invalid(t *testing.T) {
	for _, input := range []string{"", "X9", "H", "C#b4", "C4x", "C#####", "C+4", "#4", "C99999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePitch(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPitch)
		})
	}
}

func TestPitch_MIDI(t *testing.T) {
	tests := []struct {
		pitch    string
		expected int
	}{
		{"C4", 60},
		{"A4", 69},
		{"Cb4", 59},
		{"B#3", 60},
		{"C", 60}, // implicit octave 4
		{"E-5", 75},
		{"G9", 127},
	}

	for _, tt := range tests {
		t.Run(tt.pitch, func(t *testing.T) {
			assert.Equal(t, tt.expected, MustParsePitch(tt.pitch).MIDI())
		})
	}
}

func TestPitch_Transpose(t *testing.T) {
	tests := []struct {
		pitch     string
		semitones int
		expected  string
	}{
		{"C4", 2, "D4"},
		{"C4", 1, "Db4"},
		{"E4", 1, "F4"},
		{"B4", 1, "C5"},
		{"C4", -1, "B3"},
		{"C4", 12, "C5"},
		{"C4", 6, "Gb4"},
		{"G4", 7, "D5"},
		{"A4", -14, "G3"},
		{"C4", 0, "C4"},
		{"B", 1, "C"},
	}

	for _, tt := range tests {
		t.Run(tt.pitch, func(t *testing.T) {
			p := MustParsePitch(tt.pitch).Transpose(tt.semitones)
			assert.Equal(t, tt.expected, p.String())
		})
	}
}

func TestPitch_TransposeRoundTrip(t *testing.T) {
	for _, s := range []string{"C4", "F#3", "Bb5", "E##2", "Cbb6", "G", "Ab"} {
		p := MustParsePitch(s)
		for n := -25; n <= 25; n++ {
			back := p.Transpose(n).Transpose(-n)
			assert.Equal(t, p, back, "%s transposed by %d and back", s, n)
			if _, ok := p.Octave(); ok {
				assert.Equal(t, p.MIDI()+n, p.Transpose(n).MIDI(), "%s transposed by %d", s, n)
			}
		}
	}
}

func TestPitch_HighOctaveRoundTrip(t *testing.T) {
	p := MustParsePitch("G9").Transpose(12)
	require.Equal(t, "G10", p.String())

	back, err := ParsePitch(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestPitch_NegativeOctaveRendering(t *testing.T) {
	p := MustParsePitch("C0").Transpose(-1)
	assert.Equal(t, "B-1", p.String())
	octave, ok := p.Octave()
	assert.True(t, ok)
	assert.Equal(t, -1, octave)

	// "-" reads as a flat, so the rendering does not parse back to the same pitch
	assert.Equal(t, "Bb1", MustParsePitch(p.String()).String())
}

func TestPitch_TransposeExtremeCounts(t *testing.T) {
	p := MustParsePitch("C4")
	assert.NotPanics(t, func() {
		p.Transpose(math.MinInt)
		p.Transpose(math.MaxInt)
	})
	assert.Equal(t, p.MIDI()-MaxSemitones, p.Transpose(math.MinInt).MIDI())
}

func TestPitch_TransposeInterval(t *testing.T) {
	tests := []struct {
		pitch    string
		interval string
		expected string
	}{
		{"C4", "P5", "G4"},
		{"E4", "P5", "B4"},
		{"G4", "P5", "D5"},
		{"B4", "P5", "F#5"},
		{"C4", "M3", "E4"},
		{"D4", "-M3", "Bb3"},
		{"F4", "A4", "B4"},
		{"F4", "d5", "Cb5"},
		{"C4", "P8", "C5"},
		{"E", "m3", "G"},
	}

	for _, tt := range tests {
		t.Run(tt.pitch+"+"+tt.interval, func(t *testing.T) {
			p := MustParsePitch(tt.pitch).TransposeInterval(MustParseInterval(tt.interval))
			assert.Equal(t, tt.expected, p.String())
		})
	}
}
