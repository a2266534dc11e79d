package theory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChordSymbol is returned when a chord symbol cannot be spelled
var ErrInvalidChordSymbol = errors.New("invalid chord symbol")

// ChordSymbolPitches spells a chord symbol as pitches rooted in the given octave.
// Supports: C, Em, Am7, Cmaj7, Bdim, Caug, Dsus4, G9, Fadd9, Emin/G (inversions), etc.
// A bass note after "/" is placed one octave lower and comes first.
func ChordSymbolPitches(symbol string, octave int) ([]Pitch, error) {
	// Parse bass note if present (e.g., "Emin/G" -> chord="Emin", bass="G")
	baseChord := strings.TrimSpace(symbol)
	bassNote := ""
	if before, after, found := strings.Cut(baseChord, "/"); found {
		baseChord = strings.TrimSpace(before)
		bassNote = strings.TrimSpace(after)
		if bassNote == "" {
			return nil, fmt.Errorf("%w: %q: empty bass note", ErrInvalidChordSymbol, symbol)
		}
	}

	root, suffix, err := parseRootNote(baseChord)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidChordSymbol, symbol, err)
	}
	root = root.WithOctave(octave)

	quality, extension := parseChordQuality(suffix)
	intervals, err := buildChordIntervals(quality, extension)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidChordSymbol, symbol, err)
	}

	pitches := make([]Pitch, 0, len(intervals)+1)
	if bassNote != "" {
		bass, rest, err := parseRootNote(bassNote)
		if err != nil || rest != "" {
			return nil, fmt.Errorf("%w: %q: bad bass note %q", ErrInvalidChordSymbol, symbol, bassNote)
		}
		pitches = append(pitches, bass.WithOctave(octave-1))
	}
	for _, iv := range intervals {
		pitches = append(pitches, root.TransposeInterval(iv))
	}

	return pitches, nil
}

// parseRootNote splits a leading root (C, C#, Db, ...) from the rest of the symbol
func parseRootNote(chordSymbol string) (Pitch, string, error) {
	if chordSymbol == "" {
		return Pitch{}, "", errors.New("empty chord symbol")
	}

	n := 1
	if len(chordSymbol) > 1 && (chordSymbol[1] == '#' || chordSymbol[1] == 'b') {
		n = 2
	}

	// Chord roots are upper case so that "bm" can't be confused with a flat
	if chordSymbol[0] < 'A' || chordSymbol[0] > 'G' {
		return Pitch{}, "", fmt.Errorf("invalid root note: %s", chordSymbol[:n])
	}

	root, err := ParsePitch(chordSymbol[:n])
	if err != nil {
		return Pitch{}, "", fmt.Errorf("invalid root note: %s", chordSymbol[:n])
	}
	return root, chordSymbol[n:], nil
}

// parseChordQuality splits the triad quality from the extension that follows it
func parseChordQuality(suffix string) (string, string) {
	switch {
	case strings.HasPrefix(suffix, "maj"):
		// "maj" alone is a plain major triad; "maj7"/"maj9" are extensions
		return "major", suffix
	case strings.HasPrefix(suffix, "min"):
		return "minor", suffix[3:]
	case strings.HasPrefix(suffix, "dim"):
		return "diminished", suffix[3:]
	case strings.HasPrefix(suffix, "aug"):
		return "augmented", suffix[3:]
	case strings.HasPrefix(suffix, "sus2"):
		return "sus2", suffix[4:]
	case strings.HasPrefix(suffix, "sus4"):
		return "sus4", suffix[4:]
	case strings.HasPrefix(suffix, "m"):
		return "minor", suffix[1:]
	}
	return "major", suffix
}

var triadIntervals = map[string][]Interval{
	"major":      mustIntervals("P1", "M3", "P5"),
	"minor":      mustIntervals("P1", "m3", "P5"),
	"diminished": mustIntervals("P1", "m3", "d5"),
	"augmented":  mustIntervals("P1", "M3", "A5"),
	"sus2":       mustIntervals("P1", "M2", "P5"),
	"sus4":       mustIntervals("P1", "P4", "P5"),
}

var extensionIntervals = map[string][]Interval{
	"":      nil,
	"maj":   nil,
	"6":     mustIntervals("M6"),
	"7":     mustIntervals("m7"),
	"maj7":  mustIntervals("M7"),
	"9":     mustIntervals("m7", "M9"),
	"maj9":  mustIntervals("M7", "M9"),
	"11":    mustIntervals("m7", "M9", "P11"),
	"13":    mustIntervals("m7", "M9", "M13"),
	"add9":  mustIntervals("M9"),
	"add11": mustIntervals("P11"),
	"add13": mustIntervals("M13"),
}

func buildChordIntervals(quality, extension string) ([]Interval, error) {
	ext, ok := extensionIntervals[extension]
	if !ok {
		return nil, fmt.Errorf("unknown extension %q", extension)
	}

	// Fully diminished seventh
	if quality == "diminished" && extension == "7" {
		ext = mustIntervals("d7")
	}

	triad := triadIntervals[quality]
	intervals := make([]Interval, 0, len(triad)+len(ext))
	intervals = append(intervals, triad...)
	intervals = append(intervals, ext...)
	return intervals, nil
}
