package theory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInterval is returned when a string cannot be parsed as an interval
var ErrInvalidInterval = errors.New("invalid interval")

// Semitones spanned by the major or perfect form of each simple generic interval (unison..seventh)
var majorOrPerfect = [7]int{0, 2, 4, 5, 7, 9, 11}

// Generic interval (1-based) used to spell each semitone count within an octave.
// The tritone is spelled as a diminished fifth.
var semitoneGenerics = [12]int{1, 2, 2, 3, 3, 4, 5, 5, 6, 6, 7, 7}

// Interval is a named distance between two pitches, e.g. "P5", "M3" or "-m2"
type Interval struct {
	generic    int // 1 = unison, 2 = second, ... 8 = octave
	semitones  int // always >= 0; direction is carried by descending
	descending bool
}

// ParseInterval parses "[-]<quality><number>" where quality is one of
// P (perfect), M (major), m (minor), A (augmented, repeatable) or d (diminished, repeatable)
func ParseInterval(s string) (Interval, error) {
	orig := s
	s = strings.TrimSpace(s)

	var iv Interval
	if strings.HasPrefix(s, "-") {
		iv.descending = true
		s = s[1:]
	}

	i := 0
	for i < len(s) && strings.IndexByte("PMmAd", s[i]) >= 0 {
		i++
	}
	quality, digits := s[:i], s[i:]
	if quality == "" || digits == "" {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidInterval, orig)
	}

	generic, err := strconv.Atoi(digits)
	if err != nil || generic < 1 || strings.HasPrefix(digits, "+") {
		return Interval{}, fmt.Errorf("%w: %q: bad number %q", ErrInvalidInterval, orig, digits)
	}

	adjust, err := qualityAdjustment(quality, isPerfectType(generic))
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %q: %v", ErrInvalidInterval, orig, err)
	}

	iv.generic = generic
	iv.semitones = baseSemitones(generic) + adjust
	if iv.semitones < 0 {
		return Interval{}, fmt.Errorf("%w: %q: negative size", ErrInvalidInterval, orig)
	}
	return iv, nil
}

// MustParseInterval is like ParseInterval but panics on error
func MustParseInterval(s string) Interval {
	iv, err := ParseInterval(s)
	if err != nil {
		panic(err)
	}
	return iv
}

// MaxSemitones bounds the semitone counts IntervalFromSemitones accepts; larger
// magnitudes are clamped so the arithmetic cannot overflow.
const MaxSemitones = 1 << 24

// IntervalFromSemitones spells a semitone count as an interval (negative = descending).
// Counts beyond ±MaxSemitones are clamped.
func IntervalFromSemitones(semitones int) Interval {
	semitones = max(-MaxSemitones, min(semitones, MaxSemitones))
	n := abs(semitones)
	return Interval{
		generic:    semitoneGenerics[n%12] + 7*(n/12),
		semitones:  n,
		descending: semitones < 0,
	}
}

// Semitones returns the signed size of the interval
func (iv Interval) Semitones() int {
	if iv.descending {
		return -iv.semitones
	}
	return iv.semitones
}

// Generic returns the generic size (1 = unison, 5 = fifth, ...)
func (iv Interval) Generic() int {
	return iv.generic
}

// Invert returns the same interval in the opposite direction
func (iv Interval) Invert() Interval {
	iv.descending = !iv.descending
	return iv
}

func (iv Interval) String() string {
	diff := iv.semitones - baseSemitones(iv.generic)

	var quality string
	switch {
	case isPerfectType(iv.generic) && diff == 0:
		quality = "P"
	case isPerfectType(iv.generic) && diff < 0:
		quality = strings.Repeat("d", -diff)
	case diff == 0:
		quality = "M"
	case diff == -1:
		quality = "m"
	case diff < -1:
		quality = strings.Repeat("d", -diff-1)
	default:
		quality = strings.Repeat("A", diff)
	}

	sign := ""
	if iv.descending {
		sign = "-"
	}
	return sign + quality + strconv.Itoa(iv.generic)
}

func isPerfectType(generic int) bool {
	switch (generic - 1) % 7 {
	case 0, 3, 4:
		return true
	}
	return false
}

func baseSemitones(generic int) int {
	return majorOrPerfect[(generic-1)%7] + 12*((generic-1)/7)
}

func qualityAdjustment(quality string, perfectType bool) (int, error) {
	switch {
	case quality == "P":
		if !perfectType {
			return 0, errors.New("perfect quality on an imperfect interval")
		}
		return 0, nil
	case quality == "M" || quality == "m":
		if perfectType {
			return 0, fmt.Errorf("quality %q on a perfect interval", quality)
		}
		if quality == "m" {
			return -1, nil
		}
		return 0, nil
	case strings.Trim(quality, "A") == "":
		return len(quality), nil
	case strings.Trim(quality, "d") == "":
		if perfectType {
			return -len(quality), nil
		}
		return -len(quality) - 1, nil
	}
	return 0, fmt.Errorf("unknown quality %q", quality)
}
