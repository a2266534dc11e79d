package elements

import (
	"fmt"
	"slices"
	"strings"
)

// Instrument is a named, ordered collection of elements.
// Instruments may contain other instruments, but never themselves.
type Instrument struct {
	base
	elements []Element
}

// NewInstrument returns an instrument with no elements
func NewInstrument(name string) (*Instrument, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}
	return &Instrument{base: b}, nil
}

// AddElement appends e
func (i *Instrument) AddElement(e Element) error {
	if isNil(e) {
		return fmt.Errorf("%w: nil %T", ErrTypeKind, e)
	}
	if inst, ok := e.(*Instrument); ok && (inst == i || inst.contains(i)) {
		return fmt.Errorf("%w: adding %q to %q", ErrContainmentCycle, inst.name, i.name)
	}
	i.elements = append(i.elements, e)
	return nil
}

// Add appends v if it is an Element, for callers holding untyped values
func (i *Instrument) Add(v any) error {
	e, ok := v.(Element)
	if !ok {
		return fmt.Errorf("%w: %T", ErrTypeKind, v)
	}
	return i.AddElement(e)
}

// Elements returns the contained elements in insertion order
func (i *Instrument) Elements() []Element {
	return slices.Clone(i.elements)
}

func (i *Instrument) String() string {
	var b strings.Builder
	b.WriteString("Instrument: ")
	b.WriteString(i.name)
	b.WriteString("\nElements:\n")
	for n, e := range i.elements {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.String())
	}
	return b.String()
}

// isNil catches typed nil pointers as well as a nil interface
func isNil(e Element) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Note:
		return v == nil
	case *Chord:
		return v == nil
	case *Scale:
		return v == nil
	case *Instrument:
		return v == nil
	}
	return false
}

// contains reports whether target is nested anywhere below i
func (i *Instrument) contains(target *Instrument) bool {
	for _, e := range i.elements {
		inst, ok := e.(*Instrument)
		if !ok {
			continue
		}
		if inst == target || inst.contains(target) {
			return true
		}
	}
	return false
}
