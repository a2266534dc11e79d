package theory

import (
	"errors"
	"fmt"
)

// ErrUnsupportedScaleKind is returned for scale kinds other than major and minor
var ErrUnsupportedScaleKind = errors.New("unsupported scale kind")

// ScaleKind selects the interval pattern a scale is built from
type ScaleKind int

const (
	Major ScaleKind = iota
	Minor
)

// Degrees above the tonic for each scale kind
var scaleDegrees = map[ScaleKind][]Interval{
	Major: mustIntervals("P1", "M2", "M3", "P4", "P5", "M6", "M7"),
	Minor: mustIntervals("P1", "M2", "m3", "P4", "P5", "m6", "m7"),
}

// ParseScaleKind maps "major" or "minor" to a ScaleKind; an empty string means major
func ParseScaleKind(s string) (ScaleKind, error) {
	switch s {
	case "", "major":
		return Major, nil
	case "minor":
		return Minor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedScaleKind, s)
	}
}

func (k ScaleKind) String() string {
	switch k {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return fmt.Sprintf("ScaleKind(%d)", int(k))
	}
}

// ScalePitches returns the seven spelled degrees of the scale starting at tonic.
// The minor kind is the natural minor.
func ScalePitches(tonic Pitch, kind ScaleKind) ([]Pitch, error) {
	degrees, ok := scaleDegrees[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedScaleKind, kind)
	}

	pitches := make([]Pitch, 0, len(degrees))
	for _, iv := range degrees {
		pitches = append(pitches, tonic.TransposeInterval(iv))
	}
	return pitches, nil
}

func mustIntervals(names ...string) []Interval {
	out := make([]Interval, 0, len(names))
	for _, name := range names {
		out = append(out, MustParseInterval(name))
	}
	return out
}
